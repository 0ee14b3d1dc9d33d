package yamlfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parley"
	"parley/pkg/adapters/yamlfile"
	"parley/pkg/domain"
)

const transitYAML = `
name: transit
steps:
  - id: next_train
    slots:
      - name: Station
        prompt: "What station?"
      - name: Line
        prompt: "What line?"
      - name: Direction
        prompt: "Inbound or outbound?"
    reply: "The next {Direction} {Line} train from {Station} leaves in 5 minutes."
    transition: "Should I text you?"
  - id: send_text
    handler: send_text
`

func TestParse_FullConversation(t *testing.T) {
	reg := yamlfile.Registry{
		"send_text": func(ctx context.Context, slots domain.SlotView) (string, error) {
			return "OK, I'll text you.", nil
		},
	}

	def, err := yamlfile.Parse([]byte(transitYAML), reg)
	require.NoError(t, err)
	assert.Equal(t, "transit", def.Name)
	require.Equal(t, 2, def.Dialog.Len())

	eng, err := parley.New(def.Dialog, parley.WithName(def.Name))
	require.NoError(t, err)

	sess := domain.NewSession("conv-1")
	ctx := context.Background()

	res, err := eng.Advance(ctx, sess, "", "")
	require.NoError(t, err)
	assert.Equal(t, "What station?", res.Text)

	_, err = eng.Advance(ctx, sess, "Station", "Park St")
	require.NoError(t, err)
	_, err = eng.Advance(ctx, sess, "Line", "Red")
	require.NoError(t, err)

	res, err = eng.Advance(ctx, sess, "Direction", "Inbound")
	require.NoError(t, err)
	assert.Equal(t, "The next Inbound Red train from Park St leaves in 5 minutes....Should I text you?", res.Text)

	res, err = eng.Advance(ctx, sess, "", "")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeStatement, res.Mode)
	assert.Equal(t, "OK, I'll text you.", res.Text)
}

func TestParse_UnresolvedTagStaysLiteral(t *testing.T) {
	def, err := yamlfile.Parse([]byte(`
steps:
  - id: only
    reply: "Hello {Name}"
`), nil)
	require.NoError(t, err)

	eng, err := parley.New(def.Dialog)
	require.NoError(t, err)

	res, err := eng.Advance(context.Background(), domain.NewSession("c"), "", "")
	require.NoError(t, err)
	assert.Equal(t, "Hello {Name}", res.Text)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "no steps",
			yaml:    `name: empty`,
			wantErr: "dialog has no steps",
		},
		{
			name: "unregistered handler",
			yaml: `
steps:
  - id: a
    handler: nope
`,
			wantErr: "not registered",
		},
		{
			name: "neither handler nor reply",
			yaml: `
steps:
  - id: a
`,
			wantErr: "needs either a handler or a reply",
		},
		{
			name:    "malformed yaml",
			yaml:    "steps: [",
			wantErr: "invalid dialog yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := yamlfile.Parse([]byte(tt.yaml), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_NameFallsBackToFilename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "commute.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
steps:
  - id: only
    reply: "hi"
`), 0o644))

	def, err := yamlfile.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "commute", def.Name)
}
