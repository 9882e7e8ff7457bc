//go:build !amd64 && !arm64

package fp

func init() {
	if PortableEnv() {
		setPortableMode()
		return
	}

	// Go floats are IEEE 754 everywhere; only the FMA probe is missing.
	setIEEEMode(false)
}
