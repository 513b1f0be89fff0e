//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Compiles the GLSL stages into the SPIR-V blobs the renderer loads.
func (Build) Shaders() error {
	return buildShaders()
}

func buildShaders() error {
	stages := []struct{ src, out string }{
		{src: "shaders/shader.vert", out: "shaders/vert.spv"},
		{src: "shaders/shader.frag", out: "shaders/frag.spv"},
	}
	for _, s := range stages {
		if _, err := executeCmd("glslc", withArgs(s.src, "-o", s.out), withStream()); err != nil {
			return err
		}
	}
	return nil
}
