package vulkan

import (
	"reflect"
	"testing"

	vk "github.com/goki/vulkan"
)

func TestSelectQueueFamilies(t *testing.T) {
	tests := []struct {
		name              string
		families          []queueFamily
		graphics, present uint32
		ok                bool
	}{
		{
			name:     "single combined family",
			families: []queueFamily{{Graphics: true, Present: true}},
			graphics: 0, present: 0, ok: true,
		},
		{
			name:     "combined family preferred over split",
			families: []queueFamily{{Graphics: true}, {Present: true}, {Graphics: true, Present: true}},
			graphics: 2, present: 2, ok: true,
		},
		{
			name:     "distinct families",
			families: []queueFamily{{Present: true}, {}, {Graphics: true}},
			graphics: 2, present: 0, ok: true,
		},
		{
			name:     "no present",
			families: []queueFamily{{Graphics: true}},
			ok:       false,
		},
		{
			name: "no families",
			ok:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graphics, present, ok := selectQueueFamilies(tt.families)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (graphics != tt.graphics || present != tt.present) {
				t.Fatalf("families = (%d, %d), want (%d, %d)", graphics, present, tt.graphics, tt.present)
			}
		})
	}
}

func TestUniqueQueueFamilies(t *testing.T) {
	if got := uniqueQueueFamilies(1, 1); !reflect.DeepEqual(got, []uint32{1}) {
		t.Fatalf("shared family = %v, want [1]", got)
	}
	if got := uniqueQueueFamilies(0, 2); !reflect.DeepEqual(got, []uint32{0, 2}) {
		t.Fatalf("split families = %v, want [0 2]", got)
	}
}

func TestMissingNames(t *testing.T) {
	available := []string{"VK_KHR_swapchain", "VK_KHR_portability_subset"}
	if got := missingNames([]string{"VK_KHR_swapchain"}, available); len(got) != 0 {
		t.Fatalf("missingNames() = %v, want none", got)
	}
	want := []string{"VK_LAYER_KHRONOS_validation"}
	if got := missingNames([]string{"VK_LAYER_KHRONOS_validation", "VK_KHR_swapchain"}, available); !reflect.DeepEqual(got, want) {
		t.Fatalf("missingNames() = %v, want %v", got, want)
	}
}

func TestInstanceExtensions(t *testing.T) {
	window := []string{"VK_KHR_surface", "VK_KHR_xcb_surface"}

	got := instanceExtensions(window, "linux", false)
	if !reflect.DeepEqual(got, window) {
		t.Fatalf("linux without validation = %v, want %v", got, window)
	}

	got = instanceExtensions(window, "darwin", true)
	want := []string{
		"VK_KHR_surface", "VK_KHR_xcb_surface",
		"VK_KHR_portability_enumeration", "VK_KHR_get_physical_device_properties2",
		vk.ExtDebugReportExtensionName,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("darwin with validation = %v, want %v", got, want)
	}
	if len(window) != 2 {
		t.Fatalf("input slice was modified: %v", window)
	}
}

func TestFindMemoryType(t *testing.T) {
	hostVisible := uint32(vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit)
	deviceLocal := uint32(vk.MemoryPropertyDeviceLocalBit)
	types := []uint32{deviceLocal, hostVisible, deviceLocal | hostVisible}

	tests := []struct {
		name   string
		filter uint32
		flags  uint32
		want   int32
	}{
		{name: "device local", filter: 0b111, flags: deviceLocal, want: 0},
		{name: "host visible", filter: 0b111, flags: hostVisible, want: 1},
		{name: "filtered out", filter: 0b100, flags: hostVisible, want: 2},
		{name: "none match", filter: 0b001, flags: hostVisible, want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := findMemoryType(types, tt.filter, tt.flags); got != tt.want {
				t.Fatalf("findMemoryType() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCString(t *testing.T) {
	var name [16]byte
	copy(name[:], "VK_KHR_swapchain")
	if got := cString(name[:]); got != "VK_KHR_swapchain" {
		t.Fatalf("cString(full) = %q", got)
	}
	var short [16]byte
	copy(short[:], "abc")
	if got := cString(short[:]); got != "abc" {
		t.Fatalf("cString(short) = %q", got)
	}
	if got := VulkanSafeString("main"); got != "main\x00" {
		t.Fatalf("VulkanSafeString(main) = %q", got)
	}
	if got := VulkanSafeString("main\x00"); got != "main\x00" {
		t.Fatalf("VulkanSafeString is not idempotent: %q", got)
	}
}
