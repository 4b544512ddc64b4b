package bench

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"envsnap/internal/model"
)

type reply struct {
	out string
	err error
}

type scriptedRunner struct {
	replies []reply
	calls   []string
}

func (s *scriptedRunner) Run(_ context.Context, command string) (string, error) {
	s.calls = append(s.calls, command)
	if len(s.replies) == 0 {
		return "", errors.New("unexpected command: " + command)
	}
	r := s.replies[0]
	s.replies = s.replies[1:]
	return r.out, r.err
}

func TestSample_AllPresent(t *testing.T) {
	fake := &scriptedRunner{replies: []reply{
		{out: `{"status": "present", "version": "1.26.4", "elapsed": 0.0123, "device": "cpu", "devices": ["cpu"]}`},
		{out: `{"status": "present", "version": "2.3.1", "elapsed": 0.0042, "device": "cuda", "devices": ["cpu", "cuda:0"]}`},
		{out: `{"status": "absent"}`},
	}}
	s := &Sampler{Runner: fake, PythonBin: "python3", MatrixSize: 1000}

	rec := s.Sample(context.Background())

	require.Len(t, rec.Backends, 3)
	assert.Equal(t, model.StatePresent, rec.Backends["numpy"].State)
	assert.InDelta(t, 0.0123, rec.Backends["numpy"].ElapsedSeconds, 1e-9)
	assert.Equal(t, "cuda", rec.Backends["torch"].Device)
	assert.Equal(t, []string{"cpu", "cuda:0"}, rec.Backends["torch"].Devices)
	assert.Equal(t, model.StateAbsent, rec.Backends["tensorflow"].State)
}

func TestSample_MatrixSizePassed(t *testing.T) {
	fake := &scriptedRunner{replies: []reply{
		{out: `{"status": "absent"}`},
		{out: `{"status": "absent"}`},
		{out: `{"status": "absent"}`},
	}}
	s := &Sampler{Runner: fake, PythonBin: "python3", MatrixSize: 250}

	s.Sample(context.Background())

	require.Len(t, fake.calls, 3)
	for _, call := range fake.calls {
		assert.True(t, strings.HasSuffix(call, " '250'"), call)
	}
}

func TestSample_OneBackendFailingDoesNotAbortOthers(t *testing.T) {
	fake := &scriptedRunner{replies: []reply{
		{err: errors.New("python segfaulted")},
		{out: `{"status": "present", "version": "2.3.1", "elapsed": 0.5, "device": "cpu", "devices": ["cpu"]}`},
		{out: `{"status": "error", "error": "CUDA driver mismatch"}`},
	}}
	s := &Sampler{Runner: fake, PythonBin: "python3", MatrixSize: 1000}

	rec := s.Sample(context.Background())

	assert.Equal(t, model.StateError, rec.Backends["numpy"].State)
	assert.Contains(t, rec.Backends["numpy"].Error, "segfaulted")
	assert.Equal(t, model.StatePresent, rec.Backends["torch"].State)
	assert.Equal(t, model.StateError, rec.Backends["tensorflow"].State)
	assert.Equal(t, "CUDA driver mismatch", rec.Backends["tensorflow"].Error)
}

func TestSample_MalformedOutputIsError(t *testing.T) {
	fake := &scriptedRunner{replies: []reply{
		{out: "Killed"},
		{out: `{"status": "absent"}`},
		{out: `{"status": "absent"}`},
	}}
	s := &Sampler{Runner: fake, PythonBin: "python3", MatrixSize: 1000}

	rec := s.Sample(context.Background())

	assert.Equal(t, model.StateError, rec.Backends["numpy"].State)
	assert.Contains(t, rec.Backends["numpy"].Error, "Killed")
}

// Every backend yields exactly one of: absent, error, or a present
// result with non-negative elapsed time. Never both absent and a
// time, never a negative time.
func TestSample_OutcomeExclusivity_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("elapsed is non-negative and exclusive with absence", prop.ForAll(
		func(elapsed float64, absent bool) bool {
			var r reply
			if absent {
				r = reply{out: `{"status": "absent"}`}
			} else {
				r = reply{out: fmt.Sprintf(
					`{"status": "present", "version": "1.0", "elapsed": %g, "device": "cpu", "devices": ["cpu"]}`,
					elapsed)}
			}
			fake := &scriptedRunner{replies: []reply{r, r, r}}
			s := &Sampler{Runner: fake, PythonBin: "python3", MatrixSize: 10}

			rec := s.Sample(context.Background())

			for _, name := range Backends {
				res, ok := rec.Backends[name]
				if !ok {
					return false
				}
				switch res.State {
				case model.StateAbsent:
					if res.ElapsedSeconds != 0 || res.Error != "" {
						return false
					}
				case model.StatePresent:
					if res.ElapsedSeconds < 0 {
						return false
					}
				case model.StateError:
					if res.Error == "" {
						return false
					}
				default:
					return false
				}
			}
			return true
		},
		gen.Float64Range(-10, 10),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
