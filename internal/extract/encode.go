package extract

import "encoding/base64"

// EncodeDocument converts raw document bytes into a transport-safe base64
// string for inline embedding in a model request.
func EncodeDocument(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}

// DecodeDocument reverses EncodeDocument, reproducing the original bytes.
func DecodeDocument(encoded string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(encoded)
}
