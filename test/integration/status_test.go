package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tmlsync/test/integration/harness"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, repo *harness.FakeRepository) *harness.TestEnvironment
		validate func(t *testing.T, view map[string]any)
	}{
		{
			name: "not logged in",
			setup: func(t *testing.T, _ *harness.FakeRepository) *harness.TestEnvironment {
				return harness.NewTestEnvironment(t)
			},
			validate: func(t *testing.T, view map[string]any) {
				assert.Equal(t, false, view["authenticated"])
				assert.Empty(t, view["projects"])
			},
		},
		{
			name: "after download",
			setup: func(t *testing.T, repo *harness.FakeRepository) *harness.TestEnvironment {
				id := repo.AddProject("North Cave", "ADMIN")
				repo.SetFile(id, []byte("survey"))
				env := loggedIn(t, repo)
				harness.AssertSuccess(t, harness.RunCommand(t, env, "projects", "download", id))
				return env
			},
			validate: func(t *testing.T, view map[string]any) {
				assert.Equal(t, true, view["authenticated"])
				projects, ok := view["projects"].([]any)
				require.True(t, ok)
				require.Len(t, projects, 1)
				project := projects[0].(map[string]any)
				assert.Equal(t, "North Cave", project["name"])
				assert.Equal(t, true, project["has_local_file"])
				assert.NotEmpty(t, project["last_downloaded"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := harness.NewFakeRepository(t)
			env := tt.setup(t, repo)

			result := harness.RunCommand(t, env, "status", "--format", "json")

			harness.AssertSuccess(t, result)
			var view map[string]any
			harness.AssertValidJSON(t, result, &view)
			tt.validate(t, view)
		})
	}
}
