package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/livp123/evplot/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default configuration file",
	Long: `Write the default configuration template to the config path.
Refuses to overwrite an existing file unless --force is given.
将默认配置模板写入配置路径，除非指定 --force 否则拒绝覆盖已有文件。`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgPath
		if path == "" {
			path = config.DefaultConfigPath
		}

		force, _ := cmd.Flags().GetBool("force")
		if err := config.WriteDefaultConfig(path, force); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Config written to %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}
