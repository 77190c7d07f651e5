package targets

import (
	"fmt"

	timemachine "github.com/iaksit/linux-timemachine/lib"
)

// New returns the Operations implementation matching the target's kind.
// sshCommand overrides the ssh invocation for remote targets (nil means
// plain "ssh"); it is ignored for local ones.
func New(target *timemachine.Target, sshCommand []string) (timemachine.Operations, error) {
	switch target.Kind {
	case timemachine.TargetLocal:
		return newLocalOperations(), nil
	case timemachine.TargetRemote:
		return newSshOperations(target, sshCommand), nil
	default:
		return nil, fmt.Errorf("%w: unknown target kind %d", timemachine.ErrInvalidTarget, target.Kind)
	}
}
