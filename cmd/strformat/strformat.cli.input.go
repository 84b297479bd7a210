package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// decodeDocument parses data according to the extension of path
func decodeDocument(path string, data []byte) (any, error) {
	var doc any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ExtJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case ExtYAML, ExtYML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case ExtTOML:
		table := make(map[string]any)
		if err := toml.Unmarshal(data, &table); err != nil {
			return nil, err
		}
		doc = table
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnsupportedFileType, ext)
	}
	return doc, nil
}

// loadArgs returns the positional arguments from an inline JSON value or a
// file. Without either, there are no arguments.
func loadArgs(argsJSON, filePath string) ([]any, error) {
	var doc any
	switch {
	case filePath != "":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		if doc, err = decodeDocument(filePath, data); err != nil {
			return nil, err
		}
	case argsJSON != "":
		if err := json.Unmarshal([]byte(argsJSON), &doc); err != nil {
			return nil, err
		}
	default:
		return nil, nil
	}
	return argsFromDocument(doc)
}

// argsFromDocument accepts an array, a mapping holding an "args" array, or any
// other mapping, which becomes the single argument.
func argsFromDocument(doc any) ([]any, error) {
	switch v := doc.(type) {
	case nil:
		return nil, nil
	case []any:
		return v, nil
	case map[string]any:
		raw, ok := v[ArgsDocumentKey]
		if !ok {
			return []any{v}, nil
		}
		args, ok := raw.([]any)
		if !ok {
			return nil, errors.New(ErrMsgArgsNotArray)
		}
		return args, nil
	default:
		return nil, errors.New(ErrMsgArgsNotArray)
	}
}

// splitTags parses a comma separated tag list, dropping blanks
func splitTags(s string) []string {
	var tags []string
	for _, tag := range strings.Split(s, TagSeparator) {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
