package colony

import "math/rand"

// defaultSeed is used when Config.Seed is zero so runs stay reproducible by default.
const defaultSeed int64 = 1

// deriveSeed mixes a parent seed and a stream id with the SplitMix64 finalizer,
// giving well-separated seeds for neighbouring stream ids.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// antRNG returns the private stream of ant k in the given iteration.
// The stream depends only on (seed, iteration, ant), never on scheduling.
func antRNG(seed int64, iteration, k, numAnts int) *rand.Rand {
	stream := uint64(iteration)*uint64(numAnts) + uint64(k)
	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}
