package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

var (
	ErrNotDir  = errors.New("not a directory")
	ErrNotFile = errors.New("not a file")
)

// Layout locates the fchk files for a molecule under Root:
//
//	<mol>/hessian.fchk
//	<mol>/vibave/refgeom/rot.fchk
//	<mol>/vibave/mode<i>/step<1|2>/rot.fchk
type Layout struct {
	Root     string
	Molecule string
}

func ensureDir(p string) error {
	info, err := os.Stat(p)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s does not exist: %w", p, err)
	} else if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDir, p)
	}
	return nil
}

func ensureFile(p string) error {
	info, err := os.Stat(p)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s does not exist: %w", p, err)
	} else if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotFile, p)
	}
	return nil
}

// resolve joins dirs onto the molecule directory, checking each one in
// turn, and then checks for file at the end
func (l Layout) resolve(file string, dirs ...string) (string, error) {
	p := filepath.Join(l.Root, l.Molecule)
	if err := ensureDir(p); err != nil {
		return "", err
	}
	for _, d := range dirs {
		p = filepath.Join(p, d)
		if err := ensureDir(p); err != nil {
			return "", err
		}
	}
	p = filepath.Join(p, file)
	if err := ensureFile(p); err != nil {
		return "", err
	}
	return p, nil
}

func (l Layout) read(file string, dirs ...string) (string, error) {
	p, err := l.resolve(file, dirs...)
	if err != nil {
		return "", err
	}
	f, err := LoadFchk(p)
	if err != nil {
		return "", err
	}
	return f.Text, nil
}

func (l Layout) Reference() (string, error) {
	return l.read("rot.fchk", "vibave", "refgeom")
}

func (l Layout) Mode(i int, d Direction) (string, error) {
	return l.read("rot.fchk", "vibave",
		fmt.Sprintf("mode%d", i),
		fmt.Sprintf("step%d", d.Step()),
	)
}

// Hessian returns the fchk file containing the Hessian, geometry and
// masses
func (l Layout) Hessian() (*Fchk, error) {
	p, err := l.resolve("hessian.fchk")
	if err != nil {
		return nil, err
	}
	return LoadFchk(p)
}
