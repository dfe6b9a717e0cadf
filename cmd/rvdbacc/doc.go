// 14 Oct 2026

/*
Rvdbacc pulls accession numbers and their source databases out of the
Reference Viral Database (https://rvdb.dbi.udel.edu/). A typical
identifier in the fasta file is

	acc|GENBANK|MH171300.1|Marine

and the line written for it is

	GENBANK|MH171300.1

The input is read twice. The first pass checks that the third field of
every identifier looks like an accession (one or two capitals, maybe an
underscore, five or six digits and maybe a version) and that no accession
is repeated. It prints

	bad_regex_count 0
	n_db 4
	n_accession 873234
	n_record 873234

and one "db NAME COUNT" line per database. The second pass writes the
output, one line per record, in the order of the input.
An identifier with fewer than three fields stops the run.

Usage:
	rvdbacc [flags]
	rvdbacc check [flags]
	rvdbacc extract [flags]

The flags are:
	-i, --input
		fasta input (default C-RVDBv23.0.fasta). Names ending in .gz or
		.xz are decompressed. - means stdin, but only for check and extract.
	-o, --output
		output (default virus_accession_numbers_C-RVDBv23.0.txt), - for stdout
	--strict
		fail if any accession is bad or repeated. Nothing is written.
	--sum
		write the BLAKE3 digest of the output to output.b3
	--config
		TOML file (default $HOME/.rvdbacc/config.toml) with keys input,
		output, strict, sum, keep_seq and log_level
	-v
		more logging, -vv for debugging

The environment variables RVDBACC_INPUT, RVDBACC_OUTPUT, RVDBACC_STRICT and
RVDBACC_LOG_LEVEL beat the config file. Flags beat everything.
*/
package main
