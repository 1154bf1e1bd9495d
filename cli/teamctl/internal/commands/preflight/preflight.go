// Package preflight checks the host before any stack command runs: docker
// reachable, compose files present, project config readable.
package preflight

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/cmdregistry"
	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/config"
	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/execx"
)

// Register adds the preflight command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("preflight", handle)
}

func handle(ctx *cmdregistry.Context) error {
	ok := true
	if _, res := execx.Capture(context.Background(), "docker", "version", "--format", "{{.Server.Version}}"); res.Code != 0 {
		log.Error("docker not available or daemon unreachable")
		ok = false
	} else {
		fmt.Println("[preflight] docker: OK")
	}
	missing := missingComposeFiles(ctx.Paths.Deploy)
	for _, f := range missing {
		log.Errorf("compose file missing: %s", f)
		ok = false
	}
	if len(missing) == 0 {
		fmt.Println("[preflight] compose files: OK")
	}
	stackPath := filepath.Join(ctx.Paths.Root, config.StackFile)
	if _, err := os.Stat(stackPath); err != nil {
		log.Warnf("%s not found; using built-in defaults", stackPath)
	} else {
		fmt.Println("[preflight] " + config.StackFile + ": OK")
	}
	if !ok {
		return fmt.Errorf("preflight checks failed")
	}
	return nil
}

// missingComposeFiles returns the required compose files that are absent.
func missingComposeFiles(deploy string) []string {
	var missing []string
	for _, name := range []string{"compose.yml", "compose.dev.yml", "compose.prod.yml"} {
		p := filepath.Join(deploy, name)
		if st, err := os.Stat(p); err != nil || st.IsDir() {
			missing = append(missing, p)
		}
	}
	return missing
}
