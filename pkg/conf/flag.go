package conf

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
)

// flagType is an internal interface for all flags.
// Every flag should have a method for creating `envName` from its name and a
// `clear` method for clearing the corresponding environment variable.
type flagType interface {
	envName() string
	clear()
}

// definedFlags is a package variable which stores all the defined flags. It
// helps to find duplicates when defining a flag with the same name.
var definedFlags = map[string]flagType{}

// cliAndEnvFlag represents an option's definition from CLI and environment
// variable. It stores generic data for each defined flag.
type cliAndEnvFlag struct {
	*kingpin.FlagClause
}

func newCliAndEnvFlag(flagName string, description string, defaultValues ...string) *cliAndEnvFlag {
	duplicatedFlag := definedFlags[flagName]
	if duplicatedFlag != nil {
		panic("This flag was already defined. Flag definition is lack of duplicate check.")
	}

	c := &cliAndEnvFlag{FlagClause: app.Flag(flagName, description)}
	c.OverrideDefaultFromEnvar(c.envName())

	for _, defaultValue := range defaultValues {
		if defaultValue == "" {
			continue
		}
		c.Default(defaultValue)
	}

	return c
}

// envName returns the name converted to a glueball environment variable
// name: uppercase with the application prefix. For instance "lattice_size"
// becomes "GLUEBALL_LATTICE_SIZE".
func (f *cliAndEnvFlag) envName() string {
	return fmt.Sprintf("%s_%s", EnvironmentPrefix, strings.ToUpper(f.Model().Name))
}

// clear unsets the corresponding environment variable.
func (f *cliAndEnvFlag) clear() {
	os.Unsetenv(f.envName())
}

// StringFlag represents flag with string value.
type StringFlag struct {
	*cliAndEnvFlag
	defaultValue string
	value        *string
}

// NewStringFlag is a constructor of StringFlag struct.
func NewStringFlag(flagName string, description string, defaultValue string) *StringFlag {
	// Check for duplicates and use it if it defines the same type of flag.
	duplicatedFlag := definedFlags[flagName]
	if duplicatedFlag != nil {
		// Check if the type is the same.
		flagDef, ok := duplicatedFlag.(*StringFlag)
		if !ok {
			panic("Flag was redefined but with different type. Unify the type.")
		}

		if flagDef.defaultValue != defaultValue {
			panic("Flag was redefined but with different default value. Unify the default.")
		}

		return flagDef
	}

	// Flag is not yet defined, so create one.
	flagDef := &StringFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, defaultValue),
		defaultValue:  defaultValue,
	}

	// Define type of the flag and register in internal map.
	flagDef.value = flagDef.String()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (s StringFlag) Value() string {
	if !isEnvParsed {
		return s.defaultValue
	}

	return *s.value
}

// IntFlag represents flag with int value.
type IntFlag struct {
	*cliAndEnvFlag
	defaultValue int
	value        *int
}

// NewIntFlag is a constructor of IntFlag struct.
func NewIntFlag(flagName string, description string, defaultValue int) *IntFlag {
	// Check for duplicates and use it if it defines the same type of flag.
	duplicatedFlag := definedFlags[flagName]
	if duplicatedFlag != nil {
		// Check if the type is the same.
		flagDef, ok := duplicatedFlag.(*IntFlag)
		if !ok {
			panic("Flag was redefined but with different type. Unify the type.")
		}

		if flagDef.defaultValue != defaultValue {
			panic("Flag was redefined but with different default value. Unify the default.")
		}

		return flagDef
	}

	// Flag is not yet defined, so create one.
	flagDef := &IntFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, fmt.Sprintf("%d", defaultValue)),
		defaultValue:  defaultValue,
	}

	// Define type of the flag and register in internal map.
	flagDef.value = flagDef.Int()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (i IntFlag) Value() int {
	if !isEnvParsed {
		return i.defaultValue
	}

	return *i.value
}

// FloatFlag represents flag with float64 value.
type FloatFlag struct {
	*cliAndEnvFlag
	defaultValue float64
	value        *float64
}

// NewFloatFlag is a constructor of FloatFlag struct.
func NewFloatFlag(flagName string, description string, defaultValue float64) *FloatFlag {
	// Check for duplicates and use it if it defines the same type of flag.
	duplicatedFlag := definedFlags[flagName]
	if duplicatedFlag != nil {
		// Check if the type is the same.
		flagDef, ok := duplicatedFlag.(*FloatFlag)
		if !ok {
			panic("Flag was redefined but with different type. Unify the type.")
		}

		if flagDef.defaultValue != defaultValue {
			panic("Flag was redefined but with different default value. Unify the default.")
		}

		return flagDef
	}

	// Flag is not yet defined, so create one.
	flagDef := &FloatFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, fmt.Sprintf("%v", defaultValue)),
		defaultValue:  defaultValue,
	}

	// Define type of the flag and register in internal map.
	flagDef.value = flagDef.Float64()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (f FloatFlag) Value() float64 {
	if !isEnvParsed {
		return f.defaultValue
	}

	return *f.value
}

// BoolFlag represents flag with bool value.
type BoolFlag struct {
	*cliAndEnvFlag
	defaultValue bool
	value        *bool
}

// NewBoolFlag is a constructor of BoolFlag struct.
func NewBoolFlag(flagName string, description string, defaultValue bool) *BoolFlag {
	// Check for duplicates and use it if it defines the same type of flag.
	duplicatedFlag := definedFlags[flagName]
	if duplicatedFlag != nil {
		// Check if the type is the same.
		flagDef, ok := duplicatedFlag.(*BoolFlag)
		if !ok {
			panic("Flag was redefined but with different type. Unify the type.")
		}

		if flagDef.defaultValue != defaultValue {
			panic("Flag was redefined but with different default value. Unify the default.")
		}

		return flagDef
	}

	// Flag is not yet defined, so create one.
	flagDef := &BoolFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, fmt.Sprintf("%v", defaultValue)),
		defaultValue:  defaultValue,
	}

	// Define type of the flag and register in internal map.
	flagDef.value = flagDef.Bool()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (b BoolFlag) Value() bool {
	if !isEnvParsed {
		return b.defaultValue
	}

	return *b.value
}
