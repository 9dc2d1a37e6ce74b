package main

import "gitlab.com/ainativeclub/portal_api/cmd"

func main() {
	cmd.Execute()
}
