//go:build !release

package resources

const configDir = ".e64"

func resourcePath() (string, error) {
	return configDir, nil
}
