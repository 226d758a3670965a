// Package platform answers the one question the generator asks about its
// host: which operating-system family it is running on. Helper scripts are
// only generated when that family matches the configured script target.
package platform
