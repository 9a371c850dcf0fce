package detectors

import (
	"bytes"
	"encoding/binary"
	"strings"
)

// processNames returns the distinct base names one process is known by:
// its executable image, its argv[0] and its kernel command name. A tool
// launched through a symlink or a loader (Wine) only shows its own name in
// argv[0] or comm, and comm is truncated, so all of them are kept.
func processNames(exe string, argv []string, comm string) []string {
	candidates := []string{baseName(exe)}
	if len(argv) > 0 {
		candidates = append(candidates, baseName(argv[0]))
	}
	candidates = append(candidates, strings.TrimSpace(comm))

	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c == "" || containsString(names, c) {
			continue
		}
		names = append(names, c)
	}
	return names
}

// baseName strips both slash and backslash directories; Wine reports
// Windows-style paths in argv.
func baseName(p string) string {
	p = strings.TrimRight(p, `/\`)
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[i+1:]
	}
	return p
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// parseProcArgs2 decodes a kern.procargs2 buffer: a native-endian int32
// argc, the NUL-terminated exec path, NUL padding, then argv. It returns
// the exec path and argv[0]; either may be empty.
func parseProcArgs2(buf []byte) (execPath, argv0 string) {
	if len(buf) < 4 {
		return "", ""
	}
	argc := int32(binary.LittleEndian.Uint32(buf[:4]))
	rest := buf[4:]

	end := bytes.IndexByte(rest, 0)
	if end < 0 {
		return string(rest), ""
	}
	execPath = string(rest[:end])
	rest = rest[end:]

	for len(rest) > 0 && rest[0] == 0 {
		rest = rest[1:]
	}
	if argc < 1 || len(rest) == 0 {
		return execPath, ""
	}
	if end = bytes.IndexByte(rest, 0); end >= 0 {
		rest = rest[:end]
	}
	return execPath, string(rest)
}
