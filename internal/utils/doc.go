// Package utils provides small helpers shared by the transport and configuration layers:
// content type checks for debug dumps, file existence checks and User-Agent providers.
package utils
