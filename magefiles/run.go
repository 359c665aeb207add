//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the bring-up end to end against the real loader. Needs
// VK_LIBRARY_PATH in the environment.
func (Run) App() error {
	fmt.Println("Run vulkantest...")
	if _, err := executeCmd("go", withArgs("run", "main.go"), withStream()); err != nil {
		return err
	}
	return nil
}
