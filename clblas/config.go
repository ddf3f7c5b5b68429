package clblas

import "github.com/spf13/viper"

// Config is the library's one capability bit per concern, read once at Setup and held for
// the instance's lifetime. It folds the reference's three independent environment flags
// (spec §9 "Scratch-image eligibility") into a single explicit ScratchImagesEnabled field,
// rather than re-deriving it from three env vars on every scratch-eligible call.
type Config struct {
	GemmPatternIndex int
	TrmmPatternIndex int
	TrsmPatternIndex int

	// ScratchImagesEnabled is true if any of AMD_CLBLAS_GEMM_IMPLEMENTATION,
	// AMD_CLBLAS_TRMM_IMPLEMENTATION, or AMD_CLBLAS_TRSM_IMPLEMENTATION is literally "1".
	ScratchImagesEnabled bool
}

// loadConfig reads Config from the process environment via viper, matching the reference's
// three AMD_CLBLAS_*_IMPLEMENTATION variables.
func loadConfig() Config {
	v := viper.New()
	v.SetEnvPrefix("AMD_CLBLAS")
	v.AutomaticEnv()
	v.BindEnv("GEMM_IMPLEMENTATION")
	v.BindEnv("TRMM_IMPLEMENTATION")
	v.BindEnv("TRSM_IMPLEMENTATION")

	gemm := v.GetString("GEMM_IMPLEMENTATION")
	trmm := v.GetString("TRMM_IMPLEMENTATION")
	trsm := v.GetString("TRSM_IMPLEMENTATION")

	return Config{
		GemmPatternIndex:     v.GetInt("GEMM_IMPLEMENTATION"),
		TrmmPatternIndex:     v.GetInt("TRMM_IMPLEMENTATION"),
		TrsmPatternIndex:     v.GetInt("TRSM_IMPLEMENTATION"),
		ScratchImagesEnabled: gemm == "1" || trmm == "1" || trsm == "1",
	}
}
