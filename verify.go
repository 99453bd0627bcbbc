//go:build !messenger_release

package messenger

// verifyByDefault enables signature consistency checks in Register unless
// the module is built with -tags messenger_release.
const verifyByDefault = true
