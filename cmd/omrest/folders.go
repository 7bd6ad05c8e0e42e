package main

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/openmeta/omrest/client"
	"github.com/openmeta/omrest/infrastructure/api/v1/dto"
)

func foldersCmd() *cobra.Command {
	flags := &remoteFlags{}

	cmd := &cobra.Command{
		Use:   "folders",
		Short: "Query and manage folders on a running server",
	}
	flags.register(cmd)

	cmd.AddCommand(folderGetCmd(flags))
	cmd.AddCommand(folderSearchCmd(flags))
	cmd.AddCommand(folderCountCmd(flags))
	cmd.AddCommand(folderChildrenCmd(flags))
	cmd.AddCommand(folderDeleteCmd(flags))

	return cmd
}

func folderGetCmd(flags *remoteFlags) *cobra.Command {
	var forLineage bool

	cmd := &cobra.Command{
		Use:   "get GUID",
		Short: "Show a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.client()
			if err != nil {
				return err
			}
			element, err := c.GetFolder(cmd.Context(), args[0], forLineage)
			if err != nil {
				return describe(err)
			}
			return flags.print(cmd.OutOrStdout(), element)
		},
	}
	cmd.Flags().BoolVar(&forLineage, "for-lineage", false, "Include deleted folders")

	return cmd
}

// searchFlags build a SearchStringRequestBody.
type searchFlags struct {
	startsWith bool
	endsWith   bool
	ignoreCase bool
	forLineage bool
	statuses   []string
}

func (s *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&s.startsWith, "starts-with", false, "Match names that start with the search string")
	cmd.Flags().BoolVar(&s.endsWith, "ends-with", false, "Match names that end with the search string")
	cmd.Flags().BoolVarP(&s.ignoreCase, "ignore-case", "i", false, "Case-insensitive match")
	cmd.Flags().BoolVar(&s.forLineage, "for-lineage", false, "Include deleted folders")
	cmd.Flags().StringSliceVar(&s.statuses, "status", nil, "Only return folders with these statuses (e.g. ACTIVE,DEPRECATED)")
}

func (s *searchFlags) body(args []string) dto.SearchStringRequestBody {
	body := dto.SearchStringRequestBody{
		StartsWith: s.startsWith,
		EndsWith:   s.endsWith,
		IgnoreCase: s.ignoreCase,
		LimitResultsByStatus: lo.Map(s.statuses, func(status string, _ int) dto.ElementStatus {
			return dto.ElementStatus(status)
		}),
	}
	body.ForLineage = s.forLineage
	if len(args) > 0 {
		body.SearchString = args[0]
	}
	return body
}

func registerPage(cmd *cobra.Command, page *client.Page) {
	cmd.Flags().IntVar(&page.StartFrom, "start-from", 0, "Offset of the first result")
	cmd.Flags().IntVar(&page.PageSize, "page-size", 0, "Maximum number of results (default: server default)")
}

func folderSearchCmd(flags *remoteFlags) *cobra.Command {
	var (
		search searchFlags
		page   client.Page
	)

	cmd := &cobra.Command{
		Use:   "search [TEXT]",
		Short: "Search folders by qualified name, display name or description",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.client()
			if err != nil {
				return err
			}
			elements, err := c.FindFolders(cmd.Context(), search.body(args), page)
			if err != nil {
				return describe(err)
			}
			return flags.print(cmd.OutOrStdout(), elements)
		},
	}
	search.register(cmd)
	registerPage(cmd, &page)

	return cmd
}

func folderCountCmd(flags *remoteFlags) *cobra.Command {
	var search searchFlags

	cmd := &cobra.Command{
		Use:   "count [TEXT]",
		Short: "Count folders matching a search string",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.client()
			if err != nil {
				return err
			}
			count, err := c.CountFolders(cmd.Context(), search.body(args))
			if err != nil {
				return describe(err)
			}
			return flags.print(cmd.OutOrStdout(), map[string]int64{"count": count})
		},
	}
	search.register(cmd)

	return cmd
}

func folderChildrenCmd(flags *remoteFlags) *cobra.Command {
	var (
		names bool
		page  client.Page
	)

	cmd := &cobra.Command{
		Use:   "children GUID",
		Short: "List the direct children of a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.client()
			if err != nil {
				return err
			}
			list := c.ChildFolderGUIDs
			if names {
				list = c.ChildFolderNames
			}
			children, err := list(cmd.Context(), args[0], page)
			if err != nil {
				return describe(err)
			}
			return flags.print(cmd.OutOrStdout(), children)
		},
	}
	cmd.Flags().BoolVar(&names, "names", false, "List display names instead of GUIDs")
	registerPage(cmd, &page)

	return cmd
}

func folderDeleteCmd(flags *remoteFlags) *cobra.Command {
	var (
		cascade bool
		method  string
	)

	cmd := &cobra.Command{
		Use:   "delete GUID",
		Short: "Delete a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.client()
			if err != nil {
				return err
			}
			opts := dto.DeleteOptions{CascadedDelete: cascade, DeleteMethod: dto.DeleteMethod(method)}
			if err := c.DeleteFolder(cmd.Context(), args[0], opts); err != nil {
				return describe(err)
			}
			return flags.print(cmd.OutOrStdout(), map[string]string{"deleted": args[0]})
		},
	}
	cmd.Flags().BoolVar(&cascade, "cascade", false, "Also delete descendants")
	cmd.Flags().StringVar(&method, "method", "", "LOOK_FOR_LINEAGE, ARCHIVE, SOFT_DELETE or PURGE (default: SOFT_DELETE)")

	return cmd
}
