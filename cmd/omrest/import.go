package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/openmeta/omrest/infrastructure/api/v1/dto"
)

// folderTree is the YAML document read by the import command:
//
//	folders:
//	  - name: finance
//	    description: Money matters
//	    children:
//	      - name: reports
type folderTree struct {
	Folders []folderNode `yaml:"folders"`
}

type folderNode struct {
	Name                 string            `yaml:"name"`
	QualifiedName        string            `yaml:"qualifiedName,omitempty"`
	Description          string            `yaml:"description,omitempty"`
	AdditionalProperties map[string]string `yaml:"additionalProperties,omitempty"`
	Children             []folderNode      `yaml:"children,omitempty"`
}

// parseFolderTree decodes and checks a folder tree. Unknown keys are rejected.
func parseFolderTree(r io.Reader) (folderTree, error) {
	var tree folderTree
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&tree); err != nil {
		if errors.Is(err, io.EOF) {
			return folderTree{}, errors.New("folder tree is empty")
		}
		return folderTree{}, fmt.Errorf("decode folder tree: %w", err)
	}
	if err := validateNodes(tree.Folders, ""); err != nil {
		return folderTree{}, err
	}
	return tree, nil
}

func validateNodes(nodes []folderNode, parent string) error {
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		name := strings.TrimSpace(n.Name)
		path := parent + "/" + name
		switch {
		case name == "":
			return fmt.Errorf("folder below %q has no name", parent+"/")
		case strings.Contains(name, "/"):
			return fmt.Errorf("folder name %q must not contain /", name)
		case seen[name]:
			return fmt.Errorf("duplicate folder %s", path)
		}
		seen[name] = true
		if err := validateNodes(n.Children, path); err != nil {
			return err
		}
	}
	return nil
}

func (n folderNode) request(parentGUID string) dto.NewFolderRequestBody {
	return dto.NewFolderRequestBody{
		ParentGUID: parentGUID,
		Properties: &dto.FolderProperties{
			QualifiedName:        n.QualifiedName,
			DisplayName:          strings.TrimSpace(n.Name),
			Description:          n.Description,
			AdditionalProperties: n.AdditionalProperties,
		},
	}
}

// folderCreator creates one folder and returns its GUID.
type folderCreator func(ctx context.Context, body dto.NewFolderRequestBody) (string, error)

type pending struct {
	parentGUID string
	node       folderNode
}

// importTree creates the tree level by level below parentGUID. Siblings are
// created concurrently, at most limit at a time. It returns the number of
// folders created.
func importTree(ctx context.Context, create folderCreator, parentGUID string, nodes []folderNode, limit int) (int, error) {
	level := make([]pending, 0, len(nodes))
	for _, n := range nodes {
		level = append(level, pending{parentGUID: parentGUID, node: n})
	}

	created := 0
	for len(level) > 0 {
		var (
			mu   sync.Mutex
			next []pending
		)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(max(limit, 1))
		for _, p := range level {
			g.Go(func() error {
				guid, err := create(gctx, p.node.request(p.parentGUID))
				if err != nil {
					return fmt.Errorf("create %s: %w", p.node.Name, err)
				}
				mu.Lock()
				defer mu.Unlock()
				created++
				for _, child := range p.node.Children {
					next = append(next, pending{parentGUID: guid, node: child})
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return created, err
		}
		level = next
	}
	return created, nil
}

func importCmd() *cobra.Command {
	var (
		flags       remoteFlags
		parentGUID  string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Create a folder tree from a YAML file",
		Long: `Create a folder tree from a YAML file on a running server.

The file lists folders with optional descriptions and nested children:

  folders:
    - name: finance
      description: Money matters
      children:
        - name: reports
        - name: budgets

Use "-" to read the tree from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open folder tree: %w", err)
				}
				defer func() { _ = f.Close() }()
				r = f
			}

			tree, err := parseFolderTree(r)
			if err != nil {
				return err
			}

			c, err := flags.client()
			if err != nil {
				return err
			}

			created, err := importTree(cmd.Context(), c.CreateFolder, parentGUID, tree.Folders, concurrency)
			if err != nil {
				return describe(fmt.Errorf("imported %d folders before failing: %w", created, err))
			}
			return flags.print(cmd.OutOrStdout(), map[string]int{"created": created})
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&parentGUID, "parent", "", "GUID of the folder to import below (default: root)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "Folders created in parallel")

	return cmd
}
