package project

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confsift/confsift/internal/conf"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	reg := Default()

	for _, kind := range []Kind{KindInputs, KindTransforms, KindIndexes, KindOutputs} {
		p, ok := reg.ForKind(kind)
		require.True(t, ok, "missing projector for %q", kind)
		assert.Equal(t, kind, p.Kind())
	}

	kind, ok := reg.KindForFile("/opt/splunk/etc/apps/search/local/inputs.conf")
	require.True(t, ok)
	assert.Equal(t, KindInputs, kind)

	_, ok = reg.KindForFile("etc/system/local/props.conf")
	assert.False(t, ok)
}

func TestRegistry_MapFileOverride(t *testing.T) {
	t.Parallel()

	reg := Default()
	reg.MapFile("inputs-generated.conf", KindInputs)

	kind, ok := reg.KindForFile("deploy/inputs-generated.conf")
	require.True(t, ok)
	assert.Equal(t, KindInputs, kind)
}

func TestRegistry_DuplicateRegisterPanics(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(Inputs{})

	assert.Panics(t, func() { reg.Register(Inputs{}) })
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	kind, err := ParseKind("transforms")
	require.NoError(t, err)
	assert.Equal(t, KindTransforms, kind)

	_, err = ParseKind("props")
	require.Error(t, err)
}

// claimedKeys reports which original stanza keys a record lifted out of kv.
func claimedKeys(t *testing.T, st *conf.Stanza, rec Record) map[string]struct{} {
	t.Helper()
	var kv map[string]string
	switch r := rec.(type) {
	case InputRecord:
		kv = r.KV
	case TransformRecord:
		kv = r.KV
	case IndexRecord:
		kv = r.KV
	case OutputRecord:
		kv = r.KV
	default:
		t.Fatalf("unknown record type %T", rec)
	}
	claimed := map[string]struct{}{}
	for _, k := range st.KeyOrder {
		if _, inKV := kv[k]; !inKV {
			claimed[k] = struct{}{}
		}
	}
	return claimed
}

func TestProjection_Lossless(t *testing.T) {
	t.Parallel()

	// Every projector must partition the stanza's key set between typed
	// fields and kv: nothing lost, nothing duplicated.
	text := "[monitor:///var/log/x]\nindex = main\nsourcetype = x\ndisabled = bogus\nDEST_KEY = _MetaData:Index\nserver = a:1,b:2\ncustom = keepme\n"

	testCases := []struct {
		name      string
		projector Projector
		claimed   map[string]struct{}
	}{
		{
			name:      "inputs claims recognized typed keys only",
			projector: Inputs{},
			// disabled = bogus is unrecognized and must stay in kv.
			claimed: map[string]struct{}{"index": {}, "sourcetype": {}},
		},
		{
			name:      "transforms claims its uppercase keys",
			projector: Transforms{},
			claimed:   map[string]struct{}{"DEST_KEY": {}},
		},
		{
			name:      "indexes claims nothing",
			projector: Indexes{},
			claimed:   map[string]struct{}{},
		},
		{
			name:      "outputs claims server keys",
			projector: Outputs{},
			claimed:   map[string]struct{}{"server": {}},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			st := parseOne(t, text, "inputs.conf")
			rec := tc.projector.Project(st, "r")

			if diff := cmp.Diff(tc.claimed, claimedKeys(t, st, rec)); diff != "" {
				t.Errorf("claimed key set mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProjection_Idempotent(t *testing.T) {
	t.Parallel()

	st := parseOne(t, "[monitor:///var/log/x]\nindex = main\ndisabled = 1\nextra = v\n",
		"etc/apps/search/local/inputs.conf")

	projectors := []Projector{Inputs{}, Transforms{}, Indexes{}, Outputs{}}
	for _, p := range projectors {
		first := p.Project(st, "run-7")
		second := p.Project(st, "run-7")

		firstJSON, err := json.Marshal(first)
		require.NoError(t, err)
		secondJSON, err := json.Marshal(second)
		require.NoError(t, err)
		assert.Equal(t, string(firstJSON), string(secondJSON), "projector %q is not idempotent", p.Kind())
	}
}

func TestProjection_DoesNotMutateStanza(t *testing.T) {
	t.Parallel()

	st := parseOne(t, "[s]\na = 1\nb = 2\n", "inputs.conf")

	before := map[string]string{}
	for k, v := range st.Keys {
		before[k] = v
	}
	order := append([]string(nil), st.KeyOrder...)

	_ = Inputs{}.Project(st, "r")
	_ = Indexes{}.Project(st, "r")

	assert.Equal(t, before, st.Keys)
	assert.Equal(t, order, st.KeyOrder)
}
