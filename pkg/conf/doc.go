/*
Package conf extends the builtin 'flag' package to provide:
- environment parsing with a predefined prefix,
- config dump generation with current values of all registered flags,
- the ability to extract current values of registered flags (defined with wrappers),
- predefined flags for logging (logrus integration),
*/
package conf
