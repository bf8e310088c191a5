// Package locale normalizes locale tags and selects the on-disk folder that
// backs a locale.
//
// Folders are matched by full tag first, then by language, for the requested
// locale and then for the default one:
//
//	res, err := locale.Resolve("./locales", locale.Parse("en_US.UTF-8"), locale.Parse("fr-FR"))
//	// tries ./locales/en-US, ./locales/en, ./locales/fr-FR, ./locales/fr
//
// [System] reads the process locale from the environment and
// [ParseAcceptLanguage] turns an HTTP header into candidate locales.
package locale
