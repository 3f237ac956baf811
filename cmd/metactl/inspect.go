/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/objmeta/pkg/meta"
	"github.com/voedger/objmeta/pkg/metadoc"
)

// print effective properties (flag --effective)
var effective bool

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <moduleID>",
		Short: "Loads module with its references and prints it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			defer w.close()

			f, err := formatByFlag(outputFormat)
			if err != nil {
				return err
			}

			exports, err := w.loader.LoadModule(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch root := exports[meta.RootExportName].(type) {
			case *meta.Model:
				return printDocument(out, metadoc.FromModel(root), f)
			case *meta.ObjectDescriptor:
				if err := w.resolver.ResolveAssociationTargets(cmd.Context(), root); err != nil {
					logger.Warning("associations of", root.Name(), "are not resolved:", err)
				}
				if err := printDocument(out, metadoc.FromObjectDescriptor(root), f); err != nil {
					return err
				}
				if effective {
					return printEffectiveProperties(out, root)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputFormat, "format", "f", format_YAML, "Output format: "+format_YAML+" or "+format_JSON)
	cmd.Flags().BoolVar(&effective, "effective", false, "Print effective properties including inherited ones")
	return cmd
}

// Returns object descriptor exported by stored module
func loadObjectDescriptor(ctx context.Context, w *workspace, moduleID string) (*meta.ObjectDescriptor, error) {
	exports, err := w.loader.LoadModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	d, ok := exports[meta.RootExportName].(*meta.ObjectDescriptor)
	if !ok {
		return nil, fmt.Errorf("%w: «%s»", ErrModuleIsNotObject, moduleID)
	}
	return d, nil
}

func formatByFlag(name string) (metadoc.Format, error) {
	return metadoc.FormatByName("." + name)
}

func printDocument(out io.Writer, doc *metadoc.Document, f metadoc.Format) error {
	data, err := doc.Encode(f)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	if f == metadoc.Format_JSON && err == nil {
		_, err = fmt.Fprintln(out)
	}
	return err
}

func printEffectiveProperties(out io.Writer, d *meta.ObjectDescriptor) error {
	fmt.Fprintln(out, "# effective properties")
	for _, p := range d.PropertyDescriptors() {
		owner := "-"
		if o := p.Owner(); o != nil {
			owner = o.Name()
		}
		if _, err := fmt.Fprintf(out, "# %-20s %-12s %-3s %-8s %s\n", p.Name(), p.Kind(), p.Cardinality(), p.ValueType(), owner); err != nil {
			return err
		}
	}
	return nil
}
