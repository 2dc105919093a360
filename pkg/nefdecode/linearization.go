package nefdecode

import "github.com/abworrall/nefraw/pkg/rawexif"

// linearizationCurve expands Nikon's compact per-file lookup table (found
// in Exif.Nikon3.LinearizationTable) into a full 2^bitsPerSample -> 16-bit
// table, plus the predictor-chain seed values and split row the decoder
// needs to walk the compressed stream.
type linearizationCurve struct {
	table               []uint16
	version0, version1  byte
	vpred               [2][2]uint16
	split               uint16
	max                 int
}

func bytesToShort(b []byte) uint16 { return uint16(b[0])<<8 | uint16(b[1]) }

func newLinearizationCurve(e rawexif.ExifData, bitsPerSample int) (*linearizationCurve, error) {
	bytes := rawexif.MustBytes(e, "Exif.Nikon3.LinearizationTable")

	c := &linearizationCurve{
		version0: bytes[0],
		version1: bytes[1],
	}
	c.vpred[0][0] = bytesToShort(bytes[2:4])
	c.vpred[0][1] = bytesToShort(bytes[4:6])
	c.vpred[1][0] = bytesToShort(bytes[6:8])
	c.vpred[1][1] = bytesToShort(bytes[8:10])

	nShorts := int(bytesToShort(bytes[10:12]))

	rawTable := make([]uint16, 0, nShorts)
	for i := 12; i < 12+nShorts*2; i += 2 {
		rawTable = append(rawTable, bytesToShort(bytes[i:i+2]))
	}

	if c.version0 == 0x44 && c.version1 == 0x20 {
		splitOffset := 12 + nShorts*2
		c.split = bytesToShort(bytes[splitOffset : splitOffset+2])
	} else {
		c.split = 0
	}

	c.fillTable(rawTable, bitsPerSample)
	return c, nil
}

func (c *linearizationCurve) fillTable(rawTable []uint16, bitsPerSample int) {
	tableSize := 1 << bitsPerSample
	stepSize := tableSize / (len(rawTable) - 1)
	c.table = make([]uint16, tableSize)

	curStep, stepPos := 0, 0
	for i := 0; i < tableSize; i, stepPos = i+1, stepPos+1 {
		if stepPos == stepSize {
			stepPos = 0
			curStep++
		}
		c.table[i] = uint16(
			(int(rawTable[curStep])*(stepSize-stepPos) + int(rawTable[curStep+1])*stepPos) / stepSize)
	}

	max := tableSize - 1
	for c.table[max-1] == c.table[max-2] {
		max--
	}
	c.max = max
}
