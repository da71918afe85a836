package psd

// EncodeRLE encodes source as PackBits, per Apple Technical Note TN1023.
//
// It streams through the input keeping a pending literal run and a count
// of how many of the most recent bytes repeat. Runs of exactly two equal
// bytes are emitted as literals rather than repeats, matching Photoshop's
// own encoder, and the forbidden header byte 0x80 is never produced.
func EncodeRLE(source []byte) []byte {
	var output []byte

	repeatCount := 0
	previousRepeatCount := 0
	var nonRepeating []byte
	var previousByte byte
	hasPreviousByte := false

	flushLiteral := func(run []byte) {
		if len(run) == 0 {
			return
		}
		output = append(output, byte(len(run)-1))
		output = append(output, run...)
	}

	for index, b := range source {
		isEnd := index == len(source)-1

		if hasPreviousByte && b == previousByte && previousRepeatCount != 128 {
			repeatCount++
		} else {
			repeatCount = 1
		}

		nonRepeating = append(nonRepeating, b)

		// A run of three or more identical bytes has started forming;
		// the last three bytes belong to the repeat, not the literal run.
		if repeatCount == 3 {
			length := len(nonRepeating)
			if length >= 3 {
				nonRepeating = nonRepeating[:length-3]
			} else {
				nonRepeating = nil
			}
			flushLiteral(nonRepeating)
			nonRepeating = nil
		}

		// The pending literal run is as long as it can be.
		if len(nonRepeating) == 128 {
			flushLiteral(nonRepeating)
			nonRepeating = nil
			repeatCount = 0
		}

		// The repeating value stopped repeating: emit the completed repeat
		// packet and start a fresh literal run with the current byte.
		if previousRepeatCount > 2 && repeatCount == 1 {
			if !hasPreviousByte {
				break
			}
			output = append(output, byte(257-previousRepeatCount))
			output = append(output, previousByte)
			nonRepeating = []byte{b}
		}

		if isEnd {
			if repeatCount >= 3 {
				output = append(output, byte(257-repeatCount))
				output = append(output, b)
			} else {
				flushLiteral(nonRepeating)
			}
		}

		previousByte = b
		hasPreviousByte = true
		previousRepeatCount = repeatCount
	}

	return output
}
