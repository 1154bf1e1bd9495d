package shellcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecArgs_LoginShell(t *testing.T) {
	got := execArgs("backend", nil)
	assert.Equal(t, []string{"exec", "backend", "bash", "-l"}, got)
}

func TestExecArgs_Command(t *testing.T) {
	got := execArgs("frontend", []string{"npm", "run", "dev server"})
	assert.Equal(t, []string{"exec", "frontend", "bash", "-lc", "npm 'run' 'dev server'"}, got)
}
