package booking

import "crypto/rand"

// Charset omits the lookalikes I/O/0/1 so codes survive being read aloud.
const codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// newBookingCode returns "B" followed by 10 random charset characters.
func newBookingCode() string {
	buf := make([]byte, 10)
	_, _ = rand.Read(buf)

	out := make([]byte, 0, 11)
	out = append(out, 'B')
	for _, b := range buf {
		out = append(out, codeChars[int(b)%len(codeChars)])
	}
	return string(out)
}
