//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Compiles the vulkantest binary.
func (Build) Binary() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "vulkantest", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs go vet over the whole module.
func (Build) Vet() error {
	if _, err := executeCmd("go", withArgs("vet", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the test suite.
func (Build) Test() error {
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}
