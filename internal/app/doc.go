// Package app implements the commands of the huawei-router CLI on top of the router client.
// Each command has a Run function taking a router.Client, and an Execute wrapper
// that builds the client from the configuration and terminates the process on failure.
package app
