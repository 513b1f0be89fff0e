package vulkan

import (
	"reflect"
	"testing"

	vk "github.com/goki/vulkan"

	"github.com/spaghettifunk/pong/engine/renderer/metadata"
)

func TestPlanDrawsQuad(t *testing.T) {
	quad := metadata.NewQuad("quad", 0.5, 0.5)
	if err := quad.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	for image := 0; image < 3; image++ {
		draws, err := planDraws([]uint32{quad.IndexCount()}, []int{3}, image)
		if err != nil {
			t.Fatalf("planDraws(image %d) = %v", image, err)
		}
		want := []drawCall{{Model: 0, IndexCount: 6, Set: image}}
		if !reflect.DeepEqual(draws, want) {
			t.Fatalf("planDraws(image %d) = %+v, want %+v", image, draws, want)
		}
	}
	for _, idx := range quad.Indices {
		if idx >= uint32(len(quad.Vertices)) {
			t.Fatalf("index %d out of range of %d vertices", idx, len(quad.Vertices))
		}
	}
}

func TestPlanDrawsOrderAndErrors(t *testing.T) {
	draws, err := planDraws([]uint32{6, 0, 12}, []int{2, 2, 2}, 1)
	if err != nil {
		t.Fatalf("planDraws() = %v", err)
	}
	want := []drawCall{{Model: 0, IndexCount: 6, Set: 1}, {Model: 2, IndexCount: 12, Set: 1}}
	if !reflect.DeepEqual(draws, want) {
		t.Fatalf("planDraws() = %+v, want %+v", draws, want)
	}

	if _, err := planDraws([]uint32{6}, []int{2}, 2); err == nil {
		t.Fatal("planDraws() with missing descriptor set succeeded")
	}
	if _, err := planDraws([]uint32{6, 6}, []int{2}, 0); err == nil {
		t.Fatal("planDraws() with mismatched lengths succeeded")
	}
}

func TestVertexInputDescriptions(t *testing.T) {
	binding, attributes := vertexInputDescriptions()
	if binding.Stride != 20 || binding.InputRate != vk.VertexInputRateVertex {
		t.Fatalf("binding = %+v, want stride 20 per vertex", binding)
	}
	if len(attributes) != 2 {
		t.Fatalf("got %d attributes, want 2", len(attributes))
	}
	if a := attributes[0]; a.Location != 0 || a.Format != vk.FormatR32g32Sfloat || a.Offset != 0 {
		t.Fatalf("position attribute = %+v", a)
	}
	if a := attributes[1]; a.Location != 1 || a.Format != vk.FormatR32g32b32Sfloat || a.Offset != 8 {
		t.Fatalf("color attribute = %+v", a)
	}
}

func TestFullViewport(t *testing.T) {
	viewport, scissor := fullViewport(vk.Extent2D{Width: 800, Height: 600})
	if viewport.Width != 800 || viewport.Height != 600 || viewport.X != 0 || viewport.Y != 0 {
		t.Fatalf("viewport = %+v", viewport)
	}
	if viewport.MinDepth != 0 || viewport.MaxDepth != 1 {
		t.Fatalf("depth range = [%v, %v], want [0, 1]", viewport.MinDepth, viewport.MaxDepth)
	}
	if scissor.Extent.Width != 800 || scissor.Extent.Height != 600 {
		t.Fatalf("scissor = %+v", scissor)
	}
}
