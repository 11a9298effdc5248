package session

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/klauspost/compress/zstd"
	"github.com/oomph-ac/strafe/input"
	"github.com/oomph-ac/strafe/oerror"
	"github.com/oomph-ac/strafe/player"
	"github.com/oomph-ac/strafe/player/ability"
	"github.com/oomph-ac/strafe/world"
	"github.com/sirupsen/logrus"
)

const CurrentRecordingVer = "1"

// Header is the first line of a recording. It holds everything needed to rebuild the player the
// recording started from.
type Header struct {
	Version   string       `json:"version"`
	Start     mgl32.Vec3   `json:"start"`
	Yaw       float32      `json:"yaw"`
	Pitch     float32      `json:"pitch"`
	Opts      player.Opts  `json:"opts"`
	Abilities ability.Opts `json:"abilities"`
}

// Entry is a single recorded tick. Digest is the state digest of the player after the tick.
type Entry struct {
	Tick   uint64      `json:"tick"`
	Dt     float32     `json:"dt"`
	Input  input.Frame `json:"input"`
	Digest uint64      `json:"digest"`
}

// Recording is a decoded recording.
type Recording struct {
	Header  Header
	Entries []Entry
}

// Recorder writes a recording as zstd compressed JSON lines: the header followed by one entry per tick.
type Recorder struct {
	enc *zstd.Encoder
	w   *bufio.Writer
	n   int
}

// NewRecorder starts a recording into w and writes its header.
func NewRecorder(w io.Writer, h Header) (*Recorder, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, oerror.New("unable to create recording encoder: %v", err)
	}
	r := &Recorder{enc: enc, w: bufio.NewWriterSize(enc, 64*1024)}

	h.Version = CurrentRecordingVer
	if err := r.writeLine(h); err != nil {
		_ = enc.Close()
		return nil, err
	}
	return r, nil
}

func (r *Recorder) writeLine(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return oerror.New("unable to encode recording line: %v", err)
	}
	if _, err := r.w.Write(b); err != nil {
		return err
	}
	return r.w.WriteByte('\n')
}

// Record appends a tick to the recording.
func (r *Recorder) Record(e Entry) error {
	if err := r.writeLine(e); err != nil {
		return err
	}
	r.n++
	return nil
}

// Len returns the number of ticks recorded.
func (r *Recorder) Len() int {
	return r.n
}

// Close flushes the recording and closes the encoder. It does not close the underlying writer.
func (r *Recorder) Close() error {
	if err := r.w.Flush(); err != nil {
		_ = r.enc.Close()
		return err
	}
	return r.enc.Close()
}

// DecodeRecording decodes a recording. It returns an error if the recording could not be parsed, or if its
// version is not supported.
func DecodeRecording(r io.Reader) (*Recording, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, oerror.New("unable to open recording: %v", err)
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, oerror.New("unable to read recording header: %v", err)
		}
		return nil, oerror.New("recording is empty")
	}
	rec := &Recording{}
	if err := json.Unmarshal(sc.Bytes(), &rec.Header); err != nil {
		return nil, oerror.New("unable to decode recording header: %v", err)
	}
	if rec.Header.Version != CurrentRecordingVer {
		return nil, oerror.New("unsupported recording version %q", rec.Header.Version)
	}

	for line := 2; sc.Scan(); line++ {
		var e Entry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			return nil, oerror.New("unable to decode recording line %d: %v", line, err)
		}
		rec.Entries = append(rec.Entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, oerror.New("unable to read recording: %v", err)
	}
	return rec, nil
}

// MismatchError is returned by Replay on the first tick whose digest differs from the recording.
type MismatchError struct {
	Tick uint64
	Want uint64
	Got  uint64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("digest mismatch at tick %d: recorded %016x, replayed %016x", e.Tick, e.Want, e.Got)
}

// Replay rebuilds the player described by the header, feeds it the recorded input against q and
// verifies the digest of every tick. It returns the replayed player, which is left where the replay
// stopped.
func (rec *Recording) Replay(log *logrus.Logger, q world.Query) (*player.Player, error) {
	in := input.NewState()
	p, err := player.New(log, rec.Header.Opts, in, rec.Header.Start)
	if err != nil {
		return nil, err
	}
	p.SetRotation(rec.Header.Yaw, rec.Header.Pitch)
	if err := ability.Register(p, rec.Header.Abilities); err != nil {
		return nil, err
	}

	for _, e := range rec.Entries {
		in.Push(e.Input)
		p.Tick(e.Dt, q)
		p.DrainEvents()
		if got := p.Digest(); got != e.Digest {
			return p, &MismatchError{Tick: e.Tick, Want: e.Digest, Got: got}
		}
	}
	return p, nil
}
