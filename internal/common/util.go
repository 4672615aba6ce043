package common

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Used to drop terminal password buffers once they were copied into a form.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
