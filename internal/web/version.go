package web

import (
	"encoding/hex"
	"fmt"
	"io/fs"
	"runtime/debug"
	"strconv"
	"time"

	"golang.org/x/crypto/blake2b"
)

// buildVersion identifies the running binary: the VCS revision of a clean
// build, or the start time when there is none, so each new process starts
// with fresh validators.
func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		var revision string
		dirty := false
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				dirty = setting.Value == "true"
			}
		}
		if revision != "" && !dirty {
			return revision
		}
	}
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}

// contentVersion digests everything a rendered page depends on besides the
// countdown: the catalog, the binary's templates, and the embedded assets.
func contentVersion(catalogFingerprint, build string, static fs.FS) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", fmt.Errorf("creating hash: %w", err)
	}
	fmt.Fprintf(h, "catalog:%s\nbuild:%s\n", catalogFingerprint, build)

	err = fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(static, path)
		if err != nil {
			return err
		}
		fmt.Fprintf(h, "asset:%s:%d\n", path, len(data))
		h.Write(data)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("hashing static assets: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
