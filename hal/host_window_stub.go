//go:build !cgo && !js

package hal

import "errors"

func RunWindow(_ Options, _ NewApp) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
