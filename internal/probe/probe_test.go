package probe

import (
	"context"
	"errors"
	"fmt"
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

// scriptedRunner returns canned replies in call order.
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

func allPresent(n int) []reply {
	replies := make([]reply, 0, n+1)
	for i := 0; i < n; i++ {
		replies = append(replies, reply{out: `{"status": "present", "version": "1.0.0"}`})
	}
	replies = append(replies, reply{out: "Package  Version\nnumpy    1.0.0"}) // pip list
	return replies
}

func TestProbe_AllPresent(t *testing.T) {
	fake := &scriptedRunner{replies: allPresent(len(Libraries()))}
	p := &Prober{Runner: fake, PythonBin: "python3"}

	rec := p.Probe(context.Background())

	require.Len(t, rec.Libraries, len(Libraries()))
	for _, lib := range Libraries() {
		out := rec.Libraries[lib.Display]
		assert.Equal(t, model.StatePresent, out.State, lib.Display)
		assert.Equal(t, "1.0.0", out.Version, lib.Display)
	}
	assert.Contains(t, rec.PipList, "numpy")
}

// One entry per configured identifier, each in one of the four
// states, regardless of what the interpreter reports.
func TestProbe_TotalOverIdentifiers_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	statusGen := gen.OneConstOf("present", "unknown", "absent", "error", "garbage")

	properties.Property("probe map is total with valid states", prop.ForAll(
		func(statuses []string) bool {
			libs := Libraries()
			replies := make([]reply, 0, len(libs)+1)
			for i := range libs {
				status := "absent"
				if i < len(statuses) {
					status = statuses[i]
				}
				switch status {
				case "garbage":
					replies = append(replies, reply{out: "not json at all"})
				case "present":
					replies = append(replies, reply{out: `{"status": "present", "version": "2.1"}`})
				default:
					replies = append(replies, reply{out: fmt.Sprintf(`{"status": %q}`, status)})
				}
			}
			replies = append(replies, reply{out: ""}) // pip list

			p := &Prober{Runner: &scriptedRunner{replies: replies}, PythonBin: "python3"}
			rec := p.Probe(context.Background())

			if len(rec.Libraries) != len(libs) {
				return false
			}
			for _, lib := range libs {
				out, ok := rec.Libraries[lib.Display]
				if !ok {
					return false
				}
				switch out.State {
				case model.StatePresent, model.StateUnknown, model.StateAbsent, model.StateError:
				default:
					return false
				}
			}
			return true
		},
		gen.SliceOfN(len(Libraries()), statusGen),
	))

	properties.TestingRun(t)
}

func TestProbe_RunnerFailureIsErrorOutcome(t *testing.T) {
	// Every probe command fails; outcomes are errors, never missing.
	fake := &scriptedRunner{}
	p := &Prober{Runner: fake, PythonBin: "python3"}

	rec := p.Probe(context.Background())

	require.Len(t, rec.Libraries, len(Libraries()))
	for _, lib := range Libraries() {
		out := rec.Libraries[lib.Display]
		assert.Equal(t, model.StateError, out.State, lib.Display)
		assert.NotEmpty(t, out.Detail, lib.Display)
	}
	assert.Empty(t, rec.PipList)
}

func TestProbe_PipListFailureKeepsLibraries(t *testing.T) {
	replies := allPresent(len(Libraries()))
	replies[len(replies)-1] = reply{err: errors.New("pip exploded")}

	p := &Prober{Runner: &scriptedRunner{replies: replies}, PythonBin: "python3"}
	rec := p.Probe(context.Background())

	assert.Empty(t, rec.PipList)
	assert.Len(t, rec.Libraries, len(Libraries()))
}

func TestDisplayName_Translations(t *testing.T) {
	// Exactly three identifiers translate; everything else maps to itself.
	assert.Equal(t, "Pillow", DisplayName("PIL"))
	assert.Equal(t, "opencv-python", DisplayName("cv2"))
	assert.Equal(t, "scikit-learn", DisplayName("sklearn"))
	assert.Equal(t, "numpy", DisplayName("numpy"))
	assert.Equal(t, "torch", DisplayName("torch"))
	assert.Len(t, translations, 3)
}

func TestLibraries_CopyIsIsolated(t *testing.T) {
	libs := Libraries()
	libs[0].Display = "mutated"
	assert.NotEqual(t, "mutated", Libraries()[0].Display)
}
