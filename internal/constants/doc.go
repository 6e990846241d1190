// Package constants holds values shared across packages: file permissions and media types.
package constants
