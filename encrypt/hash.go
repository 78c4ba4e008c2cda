package encrypt

// ServerVerificationHash answers the challenge a client sends in its init
// request, proving the server speaks the protocol.
func ServerVerificationHash(challenge int) int {
	challenge++
	return 110905 +
		(mod(challenge, 9)+1)*mod(11092004-challenge, (mod(challenge, 11)+1)*119)*119 +
		mod(challenge, 2004)
}

func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
