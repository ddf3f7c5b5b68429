package compute

import "github.com/google/uuid"

// imageBytesPerPixel is fixed: RGBA channel order, uint32-normalized channel type — the
// single format the scratch-image pool (spec §4.5) ever requests.
const imageBytesPerPixel = 4

// CreateImage2D creates a 2D RGBA/uint32 image of the given dimensions.
//
// See also: https://registry.khronos.org/OpenCL/sdk/3.0/docs/man/html/clCreateImage.html
func CreateImage2D(context Context, flags MemFlags, width, height uintptr) (MemObject, error) {
	if width == 0 || height == 0 {
		return MemObject{}, ErrInvalidImageSize
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, ok := reg.contexts[context]; !ok {
		return MemObject{}, ErrInvalidContext
	}
	size := width * height * imageBytesPerPixel
	m := MemObject(uuid.New())
	reg.mem[m] = &memRecord{
		context: context,
		kind:    memKindImage,
		size:    size,
		width:   width,
		height:  height,
		flags:   flags,
		data:    make([]byte, size),
		refs:    1,
	}
	return m, nil
}

// ImageDimensions returns the width and height, in pixels, of an image memory object.
func ImageDimensions(image MemObject) (width, height uintptr, err error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	rec, ok := reg.mem[image]
	if !ok || rec.kind != memKindImage {
		return 0, 0, ErrInvalidMemObject
	}
	return rec.width, rec.height, nil
}
