// Package config manages user-level settings stored at ~/.pyskel/config.yaml
// (or $PYSKEL_HOME/config.yaml). Settings supply defaults for generated
// projects, such as the git identity written into the init script and the
// virtual environment directory name. Every key can also be set through a
// PYSKEL_ environment variable, e.g. PYSKEL_GIT_USER_NAME.
package config
