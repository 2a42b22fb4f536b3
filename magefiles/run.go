//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Opens the window with every scene playing.
func (Run) Window() error {
	fmt.Println("Run paintbox...")
	_, err := executeCmd("go", withArgs("run", ".", "-play", "flower,car,robot"), withStream())
	return err
}

// Previews the scenes in the terminal.
func (Run) Term() error {
	_, err := executeCmd("go", withArgs("run", ".", "-term", "-play", "flower,car,robot"), withStream())
	return err
}

// Runs 120 headless ticks and leaves a snapshot in bin/snapshots.
func (Run) Headless() error {
	_, err := executeCmd("go", withArgs("run", ".", "-headless", "-ticks", "120", "-play", "flower,car,robot", "-snapshot", "bin/snapshots"), withStream())
	return err
}

// Runs the unit tests.
func Test() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}
