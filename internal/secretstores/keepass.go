package secretstores

import (
	"fmt"
	"os"

	"github.com/systmms/summon-keepass/internal/logging"
	"github.com/systmms/summon-keepass/pkg/secretstore"
	"github.com/tobischo/gokeepasslib/v3"
)

// KeePassOpener decrypts a KDBX database and exposes its tree through the
// secretstore interfaces.
type KeePassOpener struct {
	logger *logging.Logger
}

// NewKeePassOpener creates an opener. A nil logger discards debug output.
func NewKeePassOpener(logger *logging.Logger) *KeePassOpener {
	if logger == nil {
		logger = logging.NewWithWriter(nil, false, true)
	}
	return &KeePassOpener{logger: logger}
}

// Open reads and decrypts the database at path. Errors from the file system
// and from decryption are returned as they are; callers do not get to tell
// a wrong passphrase from a missing file.
func (o *KeePassOpener) Open(path string, passphrase []byte) (secretstore.Group, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	db := gokeepasslib.NewDatabase()
	db.Credentials = gokeepasslib.NewPasswordCredentials(string(passphrase))

	o.logger.Debug("Decoding KeePass database %s", path)
	if err := gokeepasslib.NewDecoder(f).Decode(db); err != nil {
		return nil, err
	}
	if err := db.UnlockProtectedEntries(); err != nil {
		return nil, fmt.Errorf("unlock protected entries: %w", err)
	}

	return rootOf(db), nil
}

// rootOf returns the database's root group. KeePass writes a single
// top-level group; anything else is wrapped in an unnamed virtual group.
func rootOf(db *gokeepasslib.Database) secretstore.Group {
	if db.Content == nil || db.Content.Root == nil {
		return &keepassGroup{}
	}
	groups := db.Content.Root.Groups
	if len(groups) == 1 {
		return &keepassGroup{group: &groups[0]}
	}
	return &virtualGroup{groups: groups}
}

type keepassGroup struct {
	group *gokeepasslib.Group
}

func (g *keepassGroup) Name() string {
	if g.group == nil {
		return ""
	}
	return g.group.Name
}

func (g *keepassGroup) Groups() []secretstore.Group {
	if g.group == nil {
		return nil
	}
	return wrapGroups(g.group.Groups)
}

func (g *keepassGroup) Entries() []secretstore.Entry {
	if g.group == nil {
		return nil
	}
	out := make([]secretstore.Entry, 0, len(g.group.Entries))
	for i := range g.group.Entries {
		out = append(out, &keepassEntry{entry: &g.group.Entries[i]})
	}
	return out
}

type virtualGroup struct {
	groups []gokeepasslib.Group
}

func (v *virtualGroup) Name() string                 { return "" }
func (v *virtualGroup) Groups() []secretstore.Group  { return wrapGroups(v.groups) }
func (v *virtualGroup) Entries() []secretstore.Entry { return nil }

func wrapGroups(groups []gokeepasslib.Group) []secretstore.Group {
	out := make([]secretstore.Group, 0, len(groups))
	for i := range groups {
		out = append(out, &keepassGroup{group: &groups[i]})
	}
	return out
}

type keepassEntry struct {
	entry *gokeepasslib.Entry
}

func (e *keepassEntry) Name() string {
	return e.entry.GetTitle()
}

func (e *keepassEntry) Field(name string) (string, bool) {
	v := e.entry.Get(name)
	if v == nil {
		return "", false
	}
	return v.Value.Content, true
}
