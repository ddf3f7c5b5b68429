package buildengine

import (
	stderrors "errors"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/opencl-go/clblas/compute"
)

// Build compiles source into a program for devices on context, reporting any per-device
// build log through log at Warn level so a caller doesn't need to re-query it before falling
// back to the next pattern.
//
// On a compiler rejection, Build returns a zero Program alongside compute.ErrBuildProgramFailure
// (wrapped with the captured log for context). A failure creating or compiling the program for
// host-side reasons (not a compiler rejection) returns a zero Program alongside whatever
// status compute reported, without the build-failure wrapping — callers distinguish the two by
// stderrors.Is(err, compute.ErrBuildProgramFailure).
func Build(log *logrus.Logger, ctx compute.Context, devices []compute.Device, source, options string) (compute.Program, error) {
	program, err := compute.CreateProgramWithSource(ctx, []string{source})
	if err != nil {
		return compute.Program{}, errors.Wrap(err, "buildengine: create program")
	}

	buildErr := compute.BuildProgram(program, devices, options)
	if buildErr == nil {
		return program, nil
	}

	if stderrors.Is(buildErr, compute.ErrBuildProgramFailure) {
		entries := buildLogs(program, devices)
		var logs []string
		for device, text := range entries {
			if text == "" {
				continue
			}
			log.WithFields(logrus.Fields{
				"device": device.String(),
			}).Warn("kernel build failed: " + text)
			logs = append(logs, text)
		}
		_ = compute.ReleaseProgram(program)
		msg := "buildengine: compile"
		if len(logs) > 0 {
			msg += ": " + strings.Join(logs, "\n")
		}
		return compute.Program{}, errors.Wrap(buildErr, msg)
	}

	_ = compute.ReleaseProgram(program)
	return compute.Program{}, errors.Wrap(buildErr, "buildengine: build program")
}

func buildLogs(program compute.Program, devices []compute.Device) map[compute.Device]string {
	out := make(map[compute.Device]string, len(devices))
	for _, d := range devices {
		text, err := compute.ProgramBuildLog(program, d)
		if err != nil {
			continue
		}
		out[d] = text
	}
	return out
}

// BuildFromBinary reconstructs a program from previously saved per-device binaries, skipping
// compilation entirely.
func BuildFromBinary(ctx compute.Context, devices []compute.Device, binaries [][]byte) (compute.Program, error) {
	program, loadErrs, err := compute.CreateProgramWithBinary(ctx, devices, binaries)
	if err != nil {
		return compute.Program{}, errors.Wrap(err, "buildengine: create program from binary")
	}
	for _, loadErr := range loadErrs {
		if loadErr != nil {
			_ = compute.ReleaseProgram(program)
			return compute.Program{}, errors.Wrap(loadErr, "buildengine: load binary")
		}
	}
	return program, nil
}

// BinarySize returns the size of the first non-empty per-device binary captured for program.
func BinarySize(program compute.Program) (int, error) {
	n, err := compute.ProgramBinarySize(program)
	if err != nil {
		return 0, errors.Wrap(err, "buildengine: binary size")
	}
	return n, nil
}

// Binary returns a copy of the first non-empty per-device binary captured for program.
func Binary(program compute.Program) ([]byte, error) {
	bin, err := compute.ProgramBinary(program)
	if err != nil {
		return nil, errors.Wrap(err, "buildengine: binary")
	}
	return bin, nil
}
