package core

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/huangsam/buildsize/internal/contract"
	"github.com/huangsam/buildsize/schema"
)

// CollectFiles reads a build output directory into memory.
// Labels are slash-separated paths relative to root, in lexical order.
// When root is a regular file, the set holds that single file under its base name.
// Links to files are read through; links to directories are not followed and a
// dangling link is an error.
func CollectFiles(ctx context.Context, root string, excludes []string) (schema.FileSet, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot read build output at %q: %w", root, err)
	}
	if !info.IsDir() {
		content, err := os.ReadFile(root)
		if err != nil {
			return nil, fmt.Errorf("failed to read %q: %w", root, err)
		}
		return schema.FileSet{{Label: filepath.Base(root), Content: content}}, nil
	}

	var files schema.FileSet
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("broken link %q: %w", path, err)
			}
			if !target.Mode().IsRegular() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		label := filepath.ToSlash(rel)
		if contract.ShouldIgnore(label, excludes) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %q: %w", label, err)
		}
		files = append(files, schema.FileEntry{Label: label, Content: content})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
