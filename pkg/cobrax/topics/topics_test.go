package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicFS() fstest.MapFS {
	return fstest.MapFS{
		"help/layout.md":        {Data: []byte("# Layout\n\nTemplates need a marker file.")},
		"help/option-show.txt":  {Data: []byte("Prints the effective configuration")},
		"help/nested/config.md": {Data: []byte("# Config\n\nconfig.toml")},
		"help/notes.txxt":       {Data: []byte("ignored by default")},
		"help/data.json":        {Data: []byte("{}")},
	}
}

func TestLoad(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		m, err := Load(topicFS(), "help", Options{})
		require.NoError(t, err)

		assert.Equal(t, []string{"config", "layout", "option-show"}, m.ListTopics())

		topic, ok := m.GetTopic("layout")
		require.True(t, ok)
		assert.Equal(t, "help/layout.md", topic.FilePath)
		assert.Equal(t, "# Layout\n\nTemplates need a marker file.", topic.Content)
	})

	t.Run("custom extensions", func(t *testing.T) {
		m, err := Load(topicFS(), "help", Options{Extensions: []string{".txxt"}})
		require.NoError(t, err)

		assert.Equal(t, []string{"notes"}, m.ListTopics())
	})

	t.Run("missing directory", func(t *testing.T) {
		m, err := Load(topicFS(), "nothing-here", Options{})
		require.NoError(t, err)

		assert.Empty(t, m.ListTopics())
	})
}

func TestGetTopic_FlagStyle(t *testing.T) {
	m, err := Load(topicFS(), "help", Options{})
	require.NoError(t, err)

	for _, name := range []string{"--show", "-show", "show", "option-show"} {
		t.Run(name, func(t *testing.T) {
			topic, ok := m.GetTopic(name)
			require.True(t, ok)
			assert.Equal(t, "option-show", topic.Name)
		})
	}

	_, ok := m.GetTopic("--missing")
	assert.False(t, ok)
}

func TestGlamourRenderer(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 40}

	source := "# Layout\n\nTemplates need a **marker** file."
	rendered := r.Render(source, ".md")
	assert.Contains(t, rendered, "Layout")
	assert.Contains(t, rendered, "marker")
	assert.NotEqual(t, source, rendered)

	assert.Equal(t, "plain *text*", r.Render("plain *text*", ".txt"))
}

type upperRenderer struct{}

func (upperRenderer) Render(content string, ext string) string {
	return strings.ToUpper(content)
}

func newTestRoot(t *testing.T, opts Options) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	root := &cobra.Command{Use: "app", Long: "root help text"}
	root.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	root.AddCommand(&cobra.Command{Use: "list", Short: "List things", Long: "list help text", Run: func(*cobra.Command, []string) {}})

	m, err := Load(topicFS(), "help", opts)
	require.NoError(t, err)
	m.Install(root)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestInstall(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "topic",
			args:     []string{"help", "layout"},
			contains: []string{"# LAYOUT"},
		},
		{
			name:     "flag topic",
			args:     []string{"help", "show"},
			contains: []string{"PRINTS THE EFFECTIVE CONFIGURATION"},
		},
		{
			name:     "topic list",
			args:     []string{"help", "topics"},
			contains: []string{"General topics:\n  config\n  layout\n", "Option topics:\n  --show\n", "Use 'app help <topic>'"},
		},
		{
			name:     "command help",
			args:     []string{"help", "list"},
			contains: []string{"list help text"},
		},
		{
			name:     "root help",
			args:     []string{"help"},
			contains: []string{"root help text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, out := newTestRoot(t, Options{Renderer: upperRenderer{}, GroupID: "misc"})
			root.SetArgs(tt.args)

			require.NoError(t, root.Execute())
			for _, s := range tt.contains {
				assert.Contains(t, out.String(), s)
			}
		})
	}
}

func TestInstall_GroupID(t *testing.T) {
	root, _ := newTestRoot(t, Options{GroupID: "misc"})
	root.InitDefaultHelpCmd()

	for _, c := range root.Commands() {
		if c.Name() == "help" {
			assert.Equal(t, "misc", c.GroupID)
			return
		}
	}
	t.Fatal("help command not installed")
}
