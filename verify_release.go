//go:build messenger_release

package messenger

const verifyByDefault = false
