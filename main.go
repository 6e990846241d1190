/*
This file is the entry point for the huawei-router application.
It executes the root command defined in the cmd package.
*/
package main

import "github.com/bobiko/huawei-router-api/cmd"

func main() {
	cmd.Execute()
}
