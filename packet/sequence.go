package packet

import (
	"math/rand"

	"github.com/huoshan017/eonet/data"
)

// Sequence starts are drawn from [0, maxSequenceStart].
const maxSequenceStart = 1757

// SequenceStart is the base value that client packet sequence numbers are
// counted from.
type SequenceStart interface {
	Value() int
}

type simpleSequenceStart int

func (s simpleSequenceStart) Value() int {
	return int(s)
}

// ZeroSequenceStart is used before the init handshake completes.
var ZeroSequenceStart SequenceStart = simpleSequenceStart(0)

// InitSequenceStart is the start sent in the init reply as two bytes.
type InitSequenceStart struct {
	value int
	seq1  int
	seq2  int
}

// NewInitSequenceStartFromBytes rebuilds the start from the init reply bytes.
func NewInitSequenceStartFromBytes(seq1, seq2 int) *InitSequenceStart {
	return &InitSequenceStart{value: seq1*7 + seq2 - 13, seq1: seq1, seq2: seq2}
}

// GenerateInitSequenceStart draws a random start and the byte pair that
// encodes it.
func GenerateInitSequenceStart(rng *rand.Rand) *InitSequenceStart {
	value := rng.Intn(maxSequenceStart + 1)
	seq1Max := (value + 13) / 7
	seq1Min := (value - (data.CharMax - 1) + 13 + 6) / 7
	if seq1Min < 0 {
		seq1Min = 0
	}
	seq1 := seq1Min + rng.Intn(seq1Max-seq1Min+1)
	seq2 := value - seq1*7 + 13
	return &InitSequenceStart{value: value, seq1: seq1, seq2: seq2}
}

func (s *InitSequenceStart) Value() int {
	return s.value
}

func (s *InitSequenceStart) Seq1() int {
	return s.seq1
}

func (s *InitSequenceStart) Seq2() int {
	return s.seq2
}

// PingSequenceStart is the start sent in a connection ping as two shorts.
type PingSequenceStart struct {
	value int
	seq1  int
	seq2  int
}

func NewPingSequenceStartFromValues(seq1, seq2 int) *PingSequenceStart {
	return &PingSequenceStart{value: seq1 - seq2, seq1: seq1, seq2: seq2}
}

func GeneratePingSequenceStart(rng *rand.Rand) *PingSequenceStart {
	value := rng.Intn(maxSequenceStart + 1)
	seq1 := value + rng.Intn(data.CharMax)
	return &PingSequenceStart{value: value, seq1: seq1, seq2: seq1 - value}
}

func (s *PingSequenceStart) Value() int {
	return s.value
}

func (s *PingSequenceStart) Seq1() int {
	return s.seq1
}

func (s *PingSequenceStart) Seq2() int {
	return s.seq2
}

// Sequencer hands out client packet sequence numbers: the start value plus a
// counter cycling through 0-9.
type Sequencer struct {
	start   SequenceStart
	counter int
}

func NewSequencer(start SequenceStart) *Sequencer {
	return &Sequencer{start: start}
}

func (s *Sequencer) NextSequence() int {
	result := s.start.Value() + s.counter
	s.counter = (s.counter + 1) % 10
	return result
}

// SetSequenceStart replaces the start without resetting the counter.
func (s *Sequencer) SetSequenceStart(start SequenceStart) {
	s.start = start
}
