// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the argvkit command-line interface: rendering CUE
// command documents to argument tokens, explaining how each field encodes,
// and managing the argvkit configuration file.
package cmd
