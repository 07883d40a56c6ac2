// Package fixture imports persons and groups from YAML documents into a
// registry. Nothing is written back.
package fixture

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/addressbook/internal/domain/addressbook"
	"github.com/zjrosen/addressbook/internal/log"
)

// File is the root structure of a fixture document.
type File struct {
	People []PersonDef `yaml:"people"`
	Groups []GroupDef  `yaml:"groups"`
}

// PersonDef defines a single person.
type PersonDef struct {
	Key          string   `yaml:"key"` // referenced by GroupDef.Members
	FirstName    string   `yaml:"first_name"`
	LastName     string   `yaml:"last_name"`
	Addresses    []string `yaml:"addresses"`
	Emails       []string `yaml:"emails"`
	PhoneNumbers []string `yaml:"phone_numbers"`
}

// GroupDef defines a single group and its members by person key.
type GroupDef struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members"`
}

// Result holds the entities created by an import.
type Result struct {
	People map[string]*addressbook.Person // by PersonDef.Key
	Groups []*addressbook.Group           // in document order
}

// Load reads the fixture at path from fsys into reg.
func Load(fsys fs.FS, path string, reg *addressbook.Registry) (*Result, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	res, err := Decode(f, reg)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	log.Info(log.CatFixture, "loaded fixture", "path", path, "people", len(res.People), "groups", len(res.Groups))
	return res, nil
}

// Decode parses one fixture document from r into reg. The whole document is
// validated before the first entity is created, so a bad document leaves reg
// untouched. An empty document imports nothing.
func Decode(r io.Reader, reg *addressbook.Registry) (*Result, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}

	if err := file.Validate(); err != nil {
		return nil, err
	}
	return file.apply(reg)
}

// Validate checks person keys are present and unique and that every group
// member refers to a defined person.
func (f *File) Validate() error {
	keys := make(map[string]struct{}, len(f.People))
	for i, p := range f.People {
		if p.Key == "" {
			return fmt.Errorf("person %d (%s %s): key is required", i, p.FirstName, p.LastName)
		}
		if _, dup := keys[p.Key]; dup {
			return fmt.Errorf("person %d: duplicate key %q", i, p.Key)
		}
		keys[p.Key] = struct{}{}
	}

	for i, g := range f.Groups {
		for _, m := range g.Members {
			if _, ok := keys[m]; !ok {
				return fmt.Errorf("group %d (%s): unknown member %q", i, g.Name, m)
			}
		}
	}
	return nil
}

func (f *File) apply(reg *addressbook.Registry) (*Result, error) {
	res := &Result{
		People: make(map[string]*addressbook.Person, len(f.People)),
		Groups: make([]*addressbook.Group, 0, len(f.Groups)),
	}

	for _, def := range f.People {
		res.People[def.Key] = reg.NewPerson(def.FirstName, def.LastName, def.Addresses, def.Emails, def.PhoneNumbers)
	}

	for _, def := range f.Groups {
		members := make([]*addressbook.Person, 0, len(def.Members))
		for _, key := range def.Members {
			members = append(members, res.People[key])
		}
		g, err := reg.NewGroup(def.Name, members...)
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", def.Name, err)
		}
		res.Groups = append(res.Groups, g)
	}

	log.Debug(log.CatFixture, "applied fixture", "people", len(res.People), "groups", len(res.Groups))
	return res, nil
}
