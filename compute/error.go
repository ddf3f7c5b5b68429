package compute

import "fmt"

// StatusError represents an error returned by a compute-API call, mirroring the status-code
// discipline of the accelerator APIs this package stands in for (see cl30.StatusError).
type StatusError int

// Error returns the symbolic name of the status, falling back to its numeric value.
func (err StatusError) Error() string {
	if name, known := statusNames[err]; known {
		return name
	}
	return fmt.Sprintf("status(%d)", int(err))
}

// This block contains the status codes this package can return. Names follow the
// compute-API convention the rest of the module is built against.
const (
	ErrSuccess StatusError = iota
	ErrDeviceNotFound
	ErrDeviceNotAvailable
	ErrCompilerNotAvailable
	ErrMemObjectAllocationFailure
	ErrOutOfResources
	ErrOutOfHostMemory
	ErrProfilingInfoNotAvailable
	ErrImageFormatNotSupported
	ErrBuildProgramFailure
	ErrMisalignedSubBufferOffset
	ErrInvalidValue
	ErrInvalidPlatform
	ErrInvalidDevice
	ErrInvalidContext
	ErrInvalidQueueProperties
	ErrInvalidCommandQueue
	ErrInvalidMemObject
	ErrInvalidImageSize
	ErrInvalidImageFormatDescriptor
	ErrInvalidBuildOptions
	ErrInvalidProgram
	ErrInvalidProgramExecutable
	ErrInvalidKernelName
	ErrInvalidKernel
	ErrInvalidArgIndex
	ErrInvalidArgValue
	ErrInvalidArgSize
	ErrInvalidKernelArgs
	ErrInvalidWorkDimension
	ErrInvalidWorkGroupSize
	ErrInvalidGlobalWorkSize
	ErrInvalidEventWaitList
	ErrInvalidEvent
	ErrInvalidOperation
	ErrInvalidBufferSize
)

var statusNames = map[StatusError]string{
	ErrSuccess:                      "success",
	ErrDeviceNotFound:               "device not found",
	ErrDeviceNotAvailable:           "device not available",
	ErrCompilerNotAvailable:         "compiler not available",
	ErrMemObjectAllocationFailure:   "mem object allocation failure",
	ErrOutOfResources:               "out of resources",
	ErrOutOfHostMemory:              "out of host memory",
	ErrProfilingInfoNotAvailable:    "profiling info not available",
	ErrImageFormatNotSupported:      "image format not supported",
	ErrBuildProgramFailure:          "build program failure",
	ErrMisalignedSubBufferOffset:    "misaligned sub-buffer offset",
	ErrInvalidValue:                 "invalid value",
	ErrInvalidPlatform:              "invalid platform",
	ErrInvalidDevice:                "invalid device",
	ErrInvalidContext:               "invalid context",
	ErrInvalidQueueProperties:       "invalid queue properties",
	ErrInvalidCommandQueue:          "invalid command queue",
	ErrInvalidMemObject:             "invalid mem object",
	ErrInvalidImageSize:             "invalid image size",
	ErrInvalidImageFormatDescriptor: "invalid image format descriptor",
	ErrInvalidBuildOptions:          "invalid build options",
	ErrInvalidProgram:               "invalid program",
	ErrInvalidProgramExecutable:     "invalid program executable",
	ErrInvalidKernelName:            "invalid kernel name",
	ErrInvalidKernel:                "invalid kernel",
	ErrInvalidArgIndex:              "invalid arg index",
	ErrInvalidArgValue:              "invalid arg value",
	ErrInvalidArgSize:               "invalid arg size",
	ErrInvalidKernelArgs:            "invalid kernel args",
	ErrInvalidWorkDimension:         "invalid work dimension",
	ErrInvalidWorkGroupSize:         "invalid work group size",
	ErrInvalidGlobalWorkSize:        "invalid global work size",
	ErrInvalidEventWaitList:         "invalid event wait list",
	ErrInvalidEvent:                 "invalid event",
	ErrInvalidOperation:             "invalid operation",
	ErrInvalidBufferSize:            "invalid buffer size",
}
