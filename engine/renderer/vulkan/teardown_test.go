package vulkan

import (
	"reflect"
	"testing"
)

func TestReleaseStackOrder(t *testing.T) {
	var rs ReleaseStack
	var ran []string
	for _, name := range []string{"instance", "debug callback", "surface", "device", "sync objects"} {
		name := name
		rs.Push(name, func() { ran = append(ran, name) })
	}
	if rs.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", rs.Len())
	}

	names := rs.Release()
	want := []string{"sync objects", "device", "surface", "debug callback", "instance"}
	if !reflect.DeepEqual(ran, want) {
		t.Fatalf("release order = %v, want %v", ran, want)
	}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("Release() = %v, want %v", names, want)
	}
}

func TestReleaseStackTwiceIsNoop(t *testing.T) {
	var rs ReleaseStack
	calls := 0
	rs.Push("fence", func() { calls++ })

	rs.Release()
	if got := rs.Release(); len(got) != 0 {
		t.Fatalf("second Release() ran %v", got)
	}
	if calls != 1 {
		t.Fatalf("release func ran %d times, want 1", calls)
	}
	if rs.Len() != 0 {
		t.Fatalf("Len() after Release = %d", rs.Len())
	}
}
