package bfconfigs

import (
	"github.com/reusee/bftape/cmds"
	"github.com/reusee/bftape/configs"
	"github.com/reusee/bftape/engine"
	"github.com/reusee/bftape/logs"
)

var eofFlag engine.EOFPolicy

var targetFlag engine.Target

func init() {
	cmds.Define("-eof", cmds.Func(func(str string) error {
		policy, err := engine.ParseEOFPolicy(str)
		if err != nil {
			return err
		}
		eofFlag = policy
		return nil
	}).Desc("what ',' stores when input is exhausted: error, zero, max or keep"))
	cmds.Define("-target", cmds.Func(func(str string) error {
		target, err := engine.ParseTarget(str)
		if err != nil {
			return err
		}
		targetFlag = target
		return nil
	}).Desc("language produced by -gen: c, go or starlark"))
}

func (Module) EOFPolicy(
	loader configs.Loader,
	logger logs.Logger,
) engine.EOFPolicy {
	return resolve(loader, logger, "eof", eofFlag, engine.EOFError)
}

func (Module) Target(
	loader configs.Loader,
	logger logs.Logger,
) engine.Target {
	return resolve(loader, logger, "target", targetFlag, engine.TargetC)
}

// resolve picks the flag value, then the config value, then def.
// An invalid config falls back to def; Loader.Validate reports it to the caller.
func resolve[T ~string](loader configs.Loader, logger logs.Logger, path string, flag T, def T) T {
	if flag != "" {
		return flag
	}
	value, err := configs.First[T](loader, path)
	if err != nil {
		logger.Error("read config",
			"path", path,
			"error", err,
		)
		return def
	}
	if value == "" {
		return def
	}
	if file, err := loader.Source(path); err == nil {
		logger.Debug("config",
			"path", path,
			"value", value,
			"file", file,
		)
	}
	return value
}
