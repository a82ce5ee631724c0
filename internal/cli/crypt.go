package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func NewEncryptCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "encrypt <value>",
		Short:         "Encrypt a field value the way it is stored",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cipher, err := rootOpts.cipher()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cipher.Encrypt(args[0]))
			return nil
		},
	}
}

func NewDecryptCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "decrypt <value>",
		Short:         "Decrypt a stored field value",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cipher, err := rootOpts.cipher()
			if err != nil {
				return err
			}
			plain, ok := cipher.Decrypt(args[0])
			if !ok {
				return errors.New("value is not decryptable with this secret")
			}
			fmt.Fprintln(cmd.OutOrStdout(), plain)
			return nil
		},
	}
}
