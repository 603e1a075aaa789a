package engine

import "math/rand"

// DefaultSpawnFourProbability is the chance that a spawned tile is a 4.
const DefaultSpawnFourProbability = 0.10

// Spawner places new tiles using an injected random source.
type Spawner struct {
	rng      *rand.Rand
	fourProb float64
	last     Cell
}

// NewSpawner creates a spawner drawing from src. fourProb is the
// probability that a spawned tile is a 4 instead of a 2.
func NewSpawner(src rand.Source, fourProb float64) *Spawner {
	return &Spawner{
		rng:      rand.New(src),
		fourProb: fourProb,
	}
}

// Spawn places a 2 or a 4 on a uniformly chosen empty cell.
// It returns false and leaves the board alone when the board is full.
func (s *Spawner) Spawn(b *Board) bool {
	cell, ok := s.pick(b)
	if !ok {
		return false
	}

	value := 2
	if s.rng.Float64() < s.fourProb {
		value = 4
	}

	b[cell.Row][cell.Col] = value
	return true
}

// SpawnValue places value on a uniformly chosen empty cell.
func (s *Spawner) SpawnValue(b *Board, value int) bool {
	cell, ok := s.pick(b)
	if !ok {
		return false
	}
	b[cell.Row][cell.Col] = value
	return true
}

func (s *Spawner) pick(b *Board) (Cell, bool) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return Cell{}, false
	}
	s.last = empty[s.rng.Intn(len(empty))]
	return s.last, true
}

// LastSpawn returns the cell filled by the most recent successful spawn.
func (s *Spawner) LastSpawn() Cell {
	return s.last
}
