package openaddr

type Stats struct {
	Capacity int
	Tier     int

	// Size is the number of live entries, Used adds the tombstones.
	Size       int
	Used       int
	Tombstones int

	LoadFactor              float64
	TombstonesCapacityRatio float64
	TombstonesSizeRatio     float64

	Grows         int
	Shrinks       int
	Compactions   int
	FailedShrinks int
}
