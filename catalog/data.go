package catalog

import "github.com/linesmerrill/police-report-writer-api/models"

// staticOffenses is the built-in offense table. Literals are stored uppercase
// to match how offense titles print in report headers.
var staticOffenses = []models.Offense{
	{Literal: "ASSAULT BODILY INJURY", Citation: "PC 22.01(a)(1)", Statute: "22.01", Level: "Class A Misdemeanor"},
	{Literal: "ASSAULT BY CONTACT", Citation: "PC 22.01(a)(3)", Statute: "22.01", Level: "Class C Misdemeanor"},
	{Literal: "ASSAULT BODILY INJURY MARRIED/COHAB", Citation: "PC 22.01(a)(1)", Statute: "22.01", Level: "Class A Misdemeanor"},
	{Literal: "AGGRAVATED ASSAULT WITH A DEADLY WEAPON", Citation: "PC 22.02(a)(2)", Statute: "22.02", Level: "Felony 2"},
	{Literal: "AGGRAVATED ROBBERY", Citation: "PC 29.03", Statute: "29.03", Level: "Felony 1"},
	{Literal: "ROBBERY", Citation: "PC 29.02", Statute: "29.02", Level: "Felony 2"},
	{Literal: "BURGLARY OF HABITATION", Citation: "PC 30.02(c)(2)", Statute: "30.02", Level: "Felony 2"},
	{Literal: "BURGLARY OF BUILDING", Citation: "PC 30.02(c)(1)", Statute: "30.02", Level: "State Jail Felony"},
	{Literal: "BURGLARY OF VEHICLE", Citation: "PC 30.04", Statute: "30.04", Level: "Class A Misdemeanor"},
	{Literal: "CRIMINAL TRESPASS", Citation: "PC 30.05", Statute: "30.05", Level: "Class B Misdemeanor"},
	{Literal: "CRIMINAL MISCHIEF UNDER $100", Citation: "PC 28.03(b)(1)", Statute: "28.03", Level: "Class C Misdemeanor"},
	{Literal: "CRIMINAL MISCHIEF $100-$750", Citation: "PC 28.03(b)(2)", Statute: "28.03", Level: "Class B Misdemeanor"},
	{Literal: "CRIMINAL MISCHIEF $750-$2,500", Citation: "PC 28.03(b)(3)", Statute: "28.03", Level: "Class A Misdemeanor"},
	{Literal: "THEFT UNDER $100", Citation: "PC 31.03(e)(1)", Statute: "31.03", Level: "Class C Misdemeanor"},
	{Literal: "THEFT $100-$750", Citation: "PC 31.03(e)(2)", Statute: "31.03", Level: "Class B Misdemeanor"},
	{Literal: "THEFT $750-$2,500", Citation: "PC 31.03(e)(3)", Statute: "31.03", Level: "Class A Misdemeanor"},
	{Literal: "THEFT $2,500-$30,000", Citation: "PC 31.03(e)(4)", Statute: "31.03", Level: "State Jail Felony"},
	{Literal: "THEFT OF FIREARM", Citation: "PC 31.03(e)(4)(C)", Statute: "31.03", Level: "State Jail Felony"},
	{Literal: "UNAUTHORIZED USE OF VEHICLE", Citation: "PC 31.07", Statute: "31.07", Level: "State Jail Felony"},
	{Literal: "DRIVING WHILE INTOXICATED", Citation: "PC 49.04", Statute: "49.04", Level: "Class B Misdemeanor"},
	{Literal: "DRIVING WHILE INTOXICATED 2ND", Citation: "PC 49.09(a)", Statute: "49.09", Level: "Class A Misdemeanor"},
	{Literal: "DRIVING WHILE INTOXICATED 3RD OR MORE", Citation: "PC 49.09(b)", Statute: "49.09", Level: "Felony 3"},
	{Literal: "PUBLIC INTOXICATION", Citation: "PC 49.02", Statute: "49.02", Level: "Class C Misdemeanor"},
	{Literal: "POSSESSION OF MARIJUANA UNDER 2OZ", Citation: "HSC 481.121(b)(1)", Statute: "481.121", Level: "Class B Misdemeanor"},
	{Literal: "POSSESSION OF CONTROLLED SUBSTANCE PG1 UNDER 1G", Citation: "HSC 481.115(b)", Statute: "481.115", Level: "State Jail Felony"},
	{Literal: "POSSESSION OF DRUG PARAPHERNALIA", Citation: "HSC 481.125", Statute: "481.125", Level: "Class C Misdemeanor"},
	{Literal: "EVADING ARREST OR DETENTION", Citation: "PC 38.04(a)", Statute: "38.04", Level: "Class A Misdemeanor"},
	{Literal: "EVADING ARREST WITH VEHICLE", Citation: "PC 38.04(b)(2)(A)", Statute: "38.04", Level: "Felony 3"},
	{Literal: "RESISTING ARREST SEARCH OR TRANSPORT", Citation: "PC 38.03", Statute: "38.03", Level: "Class A Misdemeanor"},
	{Literal: "FAILURE TO IDENTIFY", Citation: "PC 38.02", Statute: "38.02", Level: "Class C Misdemeanor"},
	{Literal: "INTERFERENCE WITH PUBLIC DUTIES", Citation: "PC 38.15", Statute: "38.15", Level: "Class B Misdemeanor"},
	{Literal: "DISORDERLY CONDUCT", Citation: "PC 42.01", Statute: "42.01", Level: "Class C Misdemeanor"},
	{Literal: "TERRORISTIC THREAT", Citation: "PC 22.07(a)(2)", Statute: "22.07", Level: "Class B Misdemeanor"},
	{Literal: "TERRORISTIC THREAT FAMILY VIOLENCE", Citation: "PC 22.07(a)(2)", Statute: "22.07", Level: "Class A Misdemeanor"},
	{Literal: "HARASSMENT", Citation: "PC 42.07", Statute: "42.07", Level: "Class B Misdemeanor"},
	{Literal: "VIOLATION OF PROTECTIVE ORDER", Citation: "PC 25.07", Statute: "25.07", Level: "Class A Misdemeanor"},
	{Literal: "INTERFERENCE WITH EMERGENCY CALL", Citation: "PC 42.062", Statute: "42.062", Level: "Class A Misdemeanor"},
	{Literal: "UNLAWFUL CARRYING OF WEAPON", Citation: "PC 46.02", Statute: "46.02", Level: "Class A Misdemeanor"},
	{Literal: "FELON IN POSSESSION OF FIREARM", Citation: "PC 46.04(a)", Statute: "46.04", Level: "Felony 3"},
	{Literal: "DEADLY CONDUCT", Citation: "PC 22.05(a)", Statute: "22.05", Level: "Class A Misdemeanor"},
	{Literal: "RECKLESS DRIVING", Citation: "TRC 545.401", Statute: "545.401", Level: "Misdemeanor"},
	{Literal: "RACING ON HIGHWAY", Citation: "TRC 545.420", Statute: "545.420", Level: "Class B Misdemeanor"},
	{Literal: "DUTY ON STRIKING UNATTENDED VEHICLE", Citation: "TRC 550.024", Statute: "550.024", Level: "Class C Misdemeanor"},
	{Literal: "ACCIDENT INVOLVING INJURY", Citation: "TRC 550.021", Statute: "550.021", Level: "Felony 3"},
	{Literal: "CRIMINAL NONSUPPORT", Citation: "PC 25.05", Statute: "25.05", Level: "State Jail Felony"},
	{Literal: "FORGERY", Citation: "PC 32.21", Statute: "32.21", Level: "State Jail Felony"},
	{Literal: "CREDIT CARD OR DEBIT CARD ABUSE", Citation: "PC 32.31", Statute: "32.31", Level: "State Jail Felony"},
	{Literal: "FRAUDULENT USE OF IDENTIFYING INFORMATION", Citation: "PC 32.51", Statute: "32.51", Level: "State Jail Felony"},
	{Literal: "INJURY TO A CHILD", Citation: "PC 22.04", Statute: "22.04", Level: "Felony 3"},
	{Literal: "ENDANGERING A CHILD", Citation: "PC 22.041", Statute: "22.041", Level: "State Jail Felony"},
}
